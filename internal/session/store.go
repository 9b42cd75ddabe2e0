// Package session holds the single active learner session and its caches.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/barmaja/barmaja-be/internal/entity"
)

// Store owns the one mutable session plus the quiz and challenge caches.
// Every mutation goes through a store method; nothing else touches the
// session. Replacing the session swaps in fresh caches, so entries tied to
// the old session id simply become unreachable.
type Store struct {
	mu         sync.RWMutex
	current    *entity.Session
	quizzes    map[string]entity.QuizSet
	challenges map[string]entity.CodingChallenge
}

func NewStore() *Store {
	return &Store{
		quizzes:    map[string]entity.QuizSet{},
		challenges: map[string]entity.CodingChallenge{},
	}
}

// Replace installs a new session and discards all caches. This is the only
// way a session comes into existence; there is no transition back to the
// empty state short of a process restart.
func (s *Store) Replace(sess entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	s.quizzes = map[string]entity.QuizSet{}
	s.challenges = map[string]entity.CodingChallenge{}
}

// Snapshot returns a copy of the current session, or false when no language
// has been selected yet.
func (s *Store) Snapshot() (entity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return entity.Session{}, false
	}
	return s.copyCurrent(), true
}

// AppendChat records one tutor exchange on the chat history.
func (s *Store) AppendChat(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.current.ChatHistory = append(s.current.ChatHistory, entity.ChatEntry{
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now(),
	})
}

// RecordPass marks a lesson's quiz as passed. The lesson is added to
// completed_lessons at most once, and current_lesson advances by one only
// when the passed lesson is the current one and the course is not finished.
// Returns the resulting current_lesson.
func (s *Store) RecordPass(lesson int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}

	completed := false
	for _, n := range s.current.CompletedLessons {
		if n == lesson {
			completed = true
			break
		}
	}
	if !completed {
		s.current.CompletedLessons = append(s.current.CompletedLessons, lesson)
	}

	if lesson == s.current.CurrentLesson && s.current.CurrentLesson < entity.TotalLessons {
		s.current.CurrentLesson++
	}

	return s.current.CurrentLesson
}

// Quiz returns the cached question set for a lesson in the current session.
func (s *Store) Quiz(lesson int) (entity.QuizSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return entity.QuizSet{}, false
	}
	set, ok := s.quizzes[quizKey(s.current.SessionID, lesson)]
	return set, ok
}

// PutQuiz caches the question set for a lesson. Cached sets are never
// regenerated within a session so submitted answer indices stay valid.
func (s *Store) PutQuiz(lesson int, set entity.QuizSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.quizzes[quizKey(s.current.SessionID, lesson)] = set
}

// PutChallenge caches a challenge under its milestone bucket and under its
// own challenge id, so code submissions can look it up either way.
func (s *Store) PutChallenge(milestone int, ch entity.CodingChallenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.challenges[challengeKey(s.current.SessionID, milestone)] = ch
	if ch.ChallengeID != "" {
		s.challenges[ch.ChallengeID] = ch
	}
}

// ChallengeForMilestone returns the cached challenge for a milestone bucket.
func (s *Store) ChallengeForMilestone(milestone int) (entity.CodingChallenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return entity.CodingChallenge{}, false
	}
	ch, ok := s.challenges[challengeKey(s.current.SessionID, milestone)]
	return ch, ok
}

// ChallengeByID returns a cached challenge by any of its keys.
func (s *Store) ChallengeByID(id string) (entity.CodingChallenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.challenges[id]
	return ch, ok
}

// Milestone maps a completed-lesson count to its challenge bucket: counts
// 4 through 7 map to 4, 8 through 11 to 8, and so on.
func Milestone(completedCount int) int {
	return (completedCount / 4) * 4
}

func quizKey(sessionID string, lesson int) string {
	return fmt.Sprintf("%s_lesson_%d", sessionID, lesson)
}

func challengeKey(sessionID string, milestone int) string {
	return fmt.Sprintf("%s_challenge_%d", sessionID, milestone)
}

func (s *Store) copyCurrent() entity.Session {
	sess := *s.current
	sess.CompletedLessons = append([]int(nil), s.current.CompletedLessons...)
	sess.ChatHistory = append([]entity.ChatEntry(nil), s.current.ChatHistory...)
	lessons := append([]entity.LessonInfo(nil), s.current.Curriculum.Lessons...)
	sess.Curriculum.Lessons = lessons
	return sess
}
