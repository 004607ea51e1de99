package msglog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry is one structured record in the message log.
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	MessageID   int       `json:"message_id"`
	ChatID      int64     `json:"chat_id"`
	ChatTitle   string    `json:"chat_title"`
	ChatType    string    `json:"chat_type"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	Text        string    `json:"text"`
	MessageType string    `json:"message_type"`
	HasMedia    bool      `json:"has_media,omitempty"`
}

// Store appends message records to a flat JSONL file. Safe for concurrent use.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	if path == "" {
		path = "messages_data.jsonl"
	}
	return &Store{path: path}
}

func (s *Store) Append(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("unable to encode message entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open message log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write message entry: %w", err)
	}
	return nil
}

// Load reads up to limit entries (0 for all). Malformed lines are skipped; a
// missing file is an empty log.
func (s *Store) Load(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to open message log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading message log: %w", err)
	}
	return entries, nil
}

// ByChat returns all logged messages from one chat.
func (s *Store) ByChat(chatID int64) ([]Entry, error) {
	return s.filter(func(e Entry) bool { return e.ChatID == chatID })
}

// ByUser returns all logged messages from one user.
func (s *Store) ByUser(userID int64) ([]Entry, error) {
	return s.filter(func(e Entry) bool { return e.UserID == userID })
}

func (s *Store) filter(keep func(Entry) bool) ([]Entry, error) {
	entries, err := s.Load(0)
	if err != nil {
		return nil, err
	}

	var matched []Entry
	for _, entry := range entries {
		if keep(entry) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
