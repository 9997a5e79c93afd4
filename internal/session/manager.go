package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

func (m *Manager) NewGame(opts Options) (*Game, error) {
	g, err := newGame(uuid.NewString(), opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g, nil
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// Reset 用同样的设置重开一局：新建一局替换 id 对应的旧局，返回新局（id 会变）
func (m *Manager) Reset(id string) (*Game, error) {
	old, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	g, err := m.NewGame(old.Options())
	if err != nil {
		return nil, err
	}
	if err := m.Remove(id); err != nil {
		return nil, err
	}
	return g, nil
}

// IDs 按创建时间排序
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].CreatedAt.Before(games[j].CreatedAt) })
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
