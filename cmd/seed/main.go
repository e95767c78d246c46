package main

import (
	"log"
	"os"

	"dungeon-master-be/internal/model"
	"dungeon-master-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds a demo account with one campaign, one character and one story so
// a fresh install has something to open in the client.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo data...")

	var existing model.User
	err = db.Where("email = ?", "demo@dungeonmaster.pro").First(&existing).Error
	if err == nil {
		color.Yellow("Demo user already exists, nothing to do")
		return
	}
	if err != gorm.ErrRecordNotFound {
		color.Red("Error: Failed to check for demo user: %v", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: Failed to hash demo password: %v", err)
		os.Exit(1)
	}
	hashStr := string(hash)

	err = db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			Email:        "demo@dungeonmaster.pro",
			PasswordHash: &hashStr,
			DisplayName:  "Demo Player",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		character := model.Character{
			UserId:       user.Id,
			Name:         "Thorin Emberforge",
			Race:         "Dwarf",
			Subrace:      "Mountain Dwarf",
			Class:        "Fighter",
			Level:        3,
			Strength:     16,
			Dexterity:    12,
			Constitution: 15,
			Intelligence: 10,
			Wisdom:       11,
			Charisma:     9,
			Skills:       datatypes.JSON(`["Athletics","Intimidation","Smithing"]`),
			Background:   "A smith's apprentice who left the forge to reclaim his clan's lost hold.",
		}
		if err := tx.Create(&character).Error; err != nil {
			return err
		}

		inventory := []model.InventoryItem{
			{UserId: user.Id, CharacterId: character.Id, Name: "Battleaxe"},
			{UserId: user.Id, CharacterId: character.Id, Name: "Shield"},
			{UserId: user.Id, CharacterId: character.Id, Name: "Smith's tools"},
		}
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}

		campaign := model.Campaign{
			UserId:           user.Id,
			Name:             "Echoes of the Ember Hold",
			Description:      "Reclaim a dwarven stronghold lost to a dragon a generation ago.",
			Setting:          "High fantasy",
			WorldDescription: "The Ashen Peaks, a mountain range dotted with abandoned mines and older, stranger ruins.",
			Locations:        datatypes.JSON(`[{"name":"Emberfall","type":"town","description":"The refugee town at the foot of the peaks."},{"name":"The Ember Hold","type":"dungeon","description":"The sealed dwarven stronghold, now the dragon's lair."}]`),
			NPCs:             datatypes.JSON(`[{"name":"Mara Greycloak","role":"quest giver","description":"Keeper of the hold's last surviving records."}]`),
			CharacterIds:     datatypes.JSON(`["` + character.Id.String() + `"]`),
		}
		if err := tx.Create(&campaign).Error; err != nil {
			return err
		}

		story := model.Story{
			UserId:       user.Id,
			Title:        "The Road to Emberfall",
			CampaignId:   &campaign.Id,
			CharacterIds: datatypes.JSON(`["` + character.Id.String() + `"]`),
			Content:      "Thorin arrives in Emberfall seeking the truth about his clan's fall.",
			Status:       "draft",
			Transcript:   datatypes.JSON(`[]`),
		}
		return tx.Create(&story).Error
	})
	if err != nil {
		color.Red("Error: Seeding failed: %v", err)
		os.Exit(1)
	}

	color.Green("✅ Seeded demo user demo@dungeonmaster.pro (password: demo12345)")
}
