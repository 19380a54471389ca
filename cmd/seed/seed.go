// Command seed loads users and properties into the LightBnB database.
//
// The fixture path comes from seed.fixture (SEED_FIXTURE); when empty the
// embedded fixture.json is used. Existing users are matched by email and
// not inserted again. Property prices in the fixture are in cents.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"lightbnb/internal/config"
	"lightbnb/internal/database"
	"lightbnb/internal/logging"
	"lightbnb/internal/model"
	"lightbnb/internal/repository"
	"lightbnb/internal/service"
	"lightbnb/internal/worker"

	"github.com/goccy/go-json"
)

//go:embed fixture.json
var defaultFixture []byte

type fixtureUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type fixtureProperty struct {
	OwnerEmail string `json:"owner_email"`
	model.PropertyDraft
}

type fixture struct {
	Users      []fixtureUser     `json:"users"`
	Properties []fixtureProperty `json:"properties"`
}

var (
	loadConfig       = config.Load
	newPgxPool       = database.NewPgxPool
	readFile         = os.ReadFile
	hashPassword     = service.HashPassword
	getUserWithEmail = repository.GetUserWithEmail
	addUser          = repository.AddUser
	addProperty      = repository.AddProperty
	exitFunc         = os.Exit
)

func loadFixture(path string) (*fixture, error) {
	data := defaultFixture
	if path != "" {
		b, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		data = b
	}
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// seedUsers returns the id of every fixture user by lower-cased email.
func seedUsers(ctx context.Context, db database.DB, users []fixtureUser, workers int) (map[string]int, error) {
	var mu sync.Mutex
	ids := make(map[string]int, len(users))

	pool := worker.NewPool(ctx, workers)
	for _, u := range users {
		pool.Submit(func(ctx context.Context) error {
			email := strings.ToLower(u.Email)
			user := getUserWithEmail(ctx, db, email)
			if user == nil {
				hash, err := hashPassword(u.Password)
				if err != nil {
					return fmt.Errorf("hash password for %s: %w", email, err)
				}
				user = addUser(ctx, db, &model.User{Name: u.Name, Email: email, Password: hash})
				if user == nil {
					return fmt.Errorf("add user %s failed", email)
				}
			}
			mu.Lock()
			ids[email] = user.ID
			mu.Unlock()
			return nil
		})
	}
	return ids, pool.Stop()
}

func seedProperties(ctx context.Context, db database.DB, props []fixtureProperty, owners map[string]int, workers int) (int, error) {
	var mu sync.Mutex
	added := 0

	pool := worker.NewPool(ctx, workers)
	for _, p := range props {
		pool.Submit(func(ctx context.Context) error {
			ownerID, ok := owners[strings.ToLower(p.OwnerEmail)]
			if !ok {
				return fmt.Errorf("property %q: unknown owner %s", p.Title, p.OwnerEmail)
			}
			draft := p.PropertyDraft
			draft.OwnerID = ownerID
			if addProperty(ctx, db, draft) == nil {
				return fmt.Errorf("add property %q failed", p.Title)
			}
			mu.Lock()
			added++
			mu.Unlock()
			return nil
		})
	}
	return added, pool.Stop()
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	f, err := loadFixture(cfg.Seed.Fixture)
	if err != nil {
		return err
	}

	db, err := newPgxPool(ctx, cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	owners, err := seedUsers(ctx, db, f.Users, cfg.Seed.Workers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	added, err := seedProperties(ctx, db, f.Properties, owners, cfg.Seed.Workers)
	if err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}

	logging.Info().Int("users", len(owners)).Int("properties", added).Msg("seed complete")
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		logging.Error().Err(err).Msg("seed failed")
		exitFunc(1)
	}
}
