package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/betops/bonusledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Seeder handles database seeding operations
type Seeder struct {
	operatorRepo domain.OperatorRepository
	playerRepo   domain.PlayerRepository
	gameRepo     domain.GameRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(operatorRepo domain.OperatorRepository, playerRepo domain.PlayerRepository, gameRepo domain.GameRepository) *Seeder {
	return &Seeder{
		operatorRepo: operatorRepo,
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
	}
}

// SeedAll seeds operators, players and games
func (s *Seeder) SeedAll() error {
	if err := s.SeedOperators(); err != nil {
		return err
	}
	if err := s.SeedPlayers(); err != nil {
		return err
	}
	return s.SeedGames()
}

// SeedOperators seeds the database with initial console operators
func (s *Seeder) SeedOperators() error {
	log.Printf("Seeding operators...")

	hash := sha256.Sum256([]byte("password123"))
	passwordHash := hex.EncodeToString(hash[:])

	operators := []string{"ops1", "ops2"}

	for _, username := range operators {
		existing, err := s.operatorRepo.GetByUsername(username)
		if err != nil {
			log.Printf("Error checking existing operator, skipping.")
			continue
		}
		if existing != nil {
			log.Printf("Operator already exists, skipping.")
			continue
		}

		operator := &domain.Operator{
			Username: username,
			Password: passwordHash,
		}
		if err := s.operatorRepo.Create(operator); err != nil {
			log.Printf("Error creating operator.")
			return err
		}
		log.Printf("Successfully created operator.")
	}

	log.Printf("Operator seeding completed successfully")
	return nil
}

// SeedPlayers seeds the database with initial players. player2 and player3
// are referred by player1 so referral grants can be exercised immediately.
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	referrerID := int64(34633089486)
	players := []*domain.Player{
		{ID: referrerID, Username: "player1", Balance: decimal.NewFromInt(1000), CurrentStreak: 5},
		{ID: 34679664254, Username: "player2", Balance: decimal.NewFromInt(250), CurrentStreak: 0, ReferredBy: &referrerID},
		{ID: 34616761765, Username: "player3", Balance: decimal.NewFromInt(0), CurrentStreak: 12, ReferredBy: &referrerID},
		{ID: 34673635133, Username: "player4", Balance: decimal.NewFromInt(75), CurrentStreak: 1},
	}

	for _, p := range players {
		existing, err := s.playerRepo.GetByID(p.ID)
		if err != nil {
			log.Printf("Error checking existing player, skipping.")
			continue
		}
		if existing != nil {
			log.Printf("Player already exists, skipping.")
			continue
		}

		if err := s.playerRepo.Create(p); err != nil {
			log.Printf("Error creating player.")
			return err
		}
		log.Printf("Successfully created player.")
	}

	log.Printf("Player seeding completed successfully")
	return nil
}

// SeedGames seeds the database with games carrying point stock
func (s *Seeder) SeedGames() error {
	log.Printf("Seeding games...")

	games := []*domain.Game{
		{ID: 1, Name: "Lucky Sevens", PointStock: decimal.NewFromInt(10000)},
		{ID: 2, Name: "Golden Wheel", PointStock: decimal.NewFromInt(5000)},
		{ID: 3, Name: "Dragon Dice", PointStock: decimal.NewFromInt(150)},
	}

	for _, g := range games {
		existing, err := s.gameRepo.GetByID(g.ID)
		if err != nil {
			log.Printf("Error checking existing game, skipping.")
			continue
		}
		if existing != nil {
			log.Printf("Game already exists, skipping.")
			continue
		}

		if err := s.gameRepo.Create(g); err != nil {
			log.Printf("Error creating game.")
			return err
		}
		log.Printf("Successfully created game.")
	}

	log.Printf("Game seeding completed successfully")
	return nil
}
