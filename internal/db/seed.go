package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedSuperLikes mirrors the daily allowance a freshly created profile gets.
const seedSuperLikes = 3

var seedInterests = []string{"chess", "hiking", "films", "cooking", "poetry", "cycling", "jazz", "board games"}

// SeedTestData resets the database and populates it with demo accounts,
// profiles and swipes.
//
// Behavior:
//  1. Clears blocks, matches, swipes, profiles and accounts.
//  2. Creates 20 accounts (10 male, 10 female) with hashed passwords, each
//     owning one profile seeking the opposite gender.
//  3. Generates ~200 swipes with ~70% likes; every 3rd pair is made mutual
//     and gets its match row.
func SeedTestData(db *gorm.DB, log *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	// --- Fresh start ---
	for _, table := range []string{"blocks", "matches", "swipes", "profiles", "accounts"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Info("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// --- Accounts and profiles (10 male, 10 female) ---
	profiles := make([]Profile, 0, 20)
	for i := 1; i <= 20; i++ {
		account := Account{
			Username:     fmt.Sprintf("comrade%d", i),
			Email:        fmt.Sprintf("comrade%d@example.com", i),
			PasswordHash: string(hash),
			Active:       true,
			LastLoginAt:  now.Add(-time.Duration(r.Intn(500)) * time.Hour),
		}
		if err := db.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to seed account: %w", err)
		}

		gender, seeking := GenderMale, GenderFemale
		if i > 10 {
			gender, seeking = GenderFemale, GenderMale
		}
		p := Profile{
			AccountID:           account.ID,
			DisplayName:         fmt.Sprintf("Comrade %d", i),
			Age:                 18 + r.Intn(20),
			Gender:              gender,
			SeekingGenders:      NewGenderSet(seeking),
			MinAge:              18,
			MaxAge:              40,
			ShowMe:              i%7 != 0,
			Completeness:        60,
			SuperLikesRemaining: seedSuperLikes,
			LastSuperLikeReset:  now,
		}
		if r.Intn(2) == 0 {
			p.Bio = "Looking for someone to argue about dialectics with."
			p.Completeness += 20
		}
		p.SetInterests([]string{seedInterests[r.Intn(len(seedInterests))]})
		p.Completeness += 20

		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	log.Info("seeded profiles", "count", len(profiles))

	// --- Swipes (~200) ---
	counter := 0
	for _, actor := range profiles {
		for j := 0; j < 12; j++ {
			target := profiles[r.Intn(len(profiles))]
			if target.ID == actor.ID || target.Gender == actor.Gender {
				continue
			}

			swipeType := SwipePass
			if r.Intn(100) < 70 {
				swipeType = SwipeLike
			}

			// every 3rd pair becomes mutual
			if counter%3 == 0 {
				swipeType = SwipeLike
				if err := upsertSwipe(db, target.ID, actor.ID, SwipeLike); err != nil {
					return err
				}
				p1, p2 := NormalizePair(actor.ID, target.ID)
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Match{
					Profile1ID: p1,
					Profile2ID: p2,
					Active:     true,
					MatchedAt:  now,
				}).Error; err != nil {
					return fmt.Errorf("failed to seed match: %w", err)
				}
			}

			if err := upsertSwipe(db, actor.ID, target.ID, swipeType); err != nil {
				return err
			}
			counter++
		}
	}
	log.Info("seeded swipes", "count", counter)

	return nil
}

func upsertSwipe(db *gorm.DB, actorID, targetID string, t SwipeType) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor_id"}, {Name: "target_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "updated_at"}),
	}).Create(&Swipe{ActorID: actorID, TargetID: targetID, Type: t}).Error
	if err != nil {
		return fmt.Errorf("failed to seed swipe: %w", err)
	}
	return nil
}
