package quiz

import "sync"

// documentCache holds a copy of the stored quiz. A nil cache is valid and
// never hits, so Service does not need to branch on whether caching is on.
type documentCache struct {
	mu     sync.RWMutex
	quiz   Quiz
	filled bool
}

func (c *documentCache) get() (Quiz, bool) {
	if c == nil {
		return Quiz{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled {
		return Quiz{}, false
	}
	// Hand out copies; the editor mutates what it receives.
	return c.quiz.Clone(), true
}

func (c *documentCache) set(q Quiz) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz = q.Clone()
	c.filled = true
}

func (c *documentCache) clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz = Quiz{}
	c.filled = false
}
