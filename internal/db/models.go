package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Account is the login identity. Authentication lives upstream; the engine
// only needs the reference so that each account owns at most one profile.
type Account struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Active       bool   `gorm:"default:true"`
	LastLoginAt  time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Profile is the dating-facing persona of an account.
//
// Indexes:
//   - uniqueIndex on account_id: one profile per account.
//   - idx_profiles_feed(show_me, completeness DESC, created_at DESC)
//     Serves the candidate feed ordering.
//
// SuperLikesRemaining/LastSuperLikeReset form the daily quota. They are only
// ever changed with conditional UPDATEs, never read-modify-write.
type Profile struct {
	ID                  string         `gorm:"primaryKey;size:36"`
	AccountID           string         `gorm:"uniqueIndex;size:36;not null"`
	DisplayName         string         `gorm:"size:64;not null"`
	Age                 int            `gorm:"not null;index"`
	Gender              Gender         `gorm:"size:16;not null"`
	SeekingGenders      GenderSet      `gorm:"not null;default:0"`
	MinAge              int            `gorm:"not null"`
	MaxAge              int            `gorm:"not null"`
	ShowMe              bool           `gorm:"not null;index:idx_profiles_feed,priority:1"`
	Completeness        int            `gorm:"not null;default:0;index:idx_profiles_feed,priority:2,sort:desc"`
	Bio                 string         `gorm:"size:500"`
	Interests           datatypes.JSON
	SuperLikesRemaining int            `gorm:"not null"`
	LastSuperLikeReset  time.Time      `gorm:"not null"`
	CreatedAt           time.Time      `gorm:"autoCreateTime;index:idx_profiles_feed,priority:3,sort:desc"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (p *Profile) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// InterestList decodes the JSON interests column. Malformed data reads as empty.
func (p *Profile) InterestList() []string {
	if len(p.Interests) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(p.Interests, &out); err != nil {
		return nil
	}
	return out
}

// SetInterests encodes interests into the JSON column.
func (p *Profile) SetInterests(interests []string) {
	if interests == nil {
		interests = []string{}
	}
	b, _ := json.Marshal(interests)
	p.Interests = datatypes.JSON(b)
}

// Swipe represents an actor's directional action on a target.
//
// Composite PK: (ActorID, TargetID)
//   - Ensures a single row per ordered pair (upsert overwrite guarantee).
//
// Indexes:
//   - idx_swipes_incoming(target_id, type, updated_at DESC, actor_id)
//     Serves "who liked me" lists with pagination.
type Swipe struct {
	ActorID   string    `gorm:"primaryKey;size:36"`
	TargetID  string    `gorm:"primaryKey;size:36;index:idx_swipes_incoming,priority:1"`
	Type      SwipeType `gorm:"size:16;not null;index:idx_swipes_incoming,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index:idx_swipes_incoming,priority:3,sort:desc"`
}

// Match is the mutual-interest relationship between two profiles.
//
// The pair is stored normalized (Profile1ID < Profile2ID) so the unique
// index idx_matches_pair covers the unordered pair.
type Match struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Profile1ID    string    `gorm:"size:36;not null;uniqueIndex:idx_matches_pair,priority:1"`
	Profile2ID    string    `gorm:"size:36;not null;uniqueIndex:idx_matches_pair,priority:2;index"`
	Active        bool      `gorm:"not null;default:true"`
	MatchedAt     time.Time `gorm:"not null"`
	LastMessageAt *time.Time
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (m *Match) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// OtherProfileID returns the counterpart of profileID, or false if profileID
// is not a party to the match.
func (m *Match) OtherProfileID(profileID string) (string, bool) {
	switch profileID {
	case m.Profile1ID:
		return m.Profile2ID, true
	case m.Profile2ID:
		return m.Profile1ID, true
	}
	return "", false
}

// NormalizePair orders two profile ids the way matches are stored.
func NormalizePair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Block is a directional "blocker hides blocked" record. Candidate filtering
// honours it in both directions.
type Block struct {
	BlockerID string    `gorm:"primaryKey;size:36"`
	BlockedID string    `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Models lists every table, in migration order.
func Models() []any {
	return []any{&Account{}, &Profile{}, &Swipe{}, &Match{}, &Block{}}
}
