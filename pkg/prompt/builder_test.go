package prompt

import (
	"testing"

	"dungeon-master-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fixtureCampaign() *entity.Campaign {
	return &entity.Campaign{
		Id:               uuid.New(),
		Name:             "The Shattered Vale",
		Setting:          "High fantasy",
		WorldDescription: "A valley broken by an ancient cataclysm.",
		Locations: []entity.Location{
			{Name: "Duskmere", Type: "town", Description: "A fishing town on the mist lake."},
			{Name: "The Sunken Crypt", Type: "dungeon", Description: "Flooded burial halls."},
		},
		NPCs: []entity.NPC{
			{Name: "Mara Voss", Role: "innkeeper", Description: "Knows every rumor in Duskmere."},
		},
	}
}

func fixtureCharacters() []CharacterSheet {
	return []CharacterSheet{
		{
			Character: &entity.Character{
				Name:    "Kaelen",
				Race:    "Elf",
				Subrace: "High Elf",
				Class:   "Wizard",
				Level:   5,
				Stats: entity.AbilityScores{
					Strength: 8, Dexterity: 14, Constitution: 12,
					Intelligence: 18, Wisdom: 13, Charisma: 10,
				},
				Skills:     []string{"Arcana", "History"},
				Background: "Exiled court mage.",
			},
			Inventory: []string{"Spellbook", "Dagger"},
		},
		{
			Character: &entity.Character{
				Name:  "Brunhild",
				Race:  "Dwarf",
				Class: "Fighter",
				Level: 4,
				Stats: entity.AbilityScores{
					Strength: 17, Dexterity: 10, Constitution: 16,
					Intelligence: 9, Wisdom: 12, Charisma: 11,
				},
			},
		},
	}
}

func fixtureStory(campaignId uuid.UUID) *entity.Story {
	return &entity.Story{
		Id:         uuid.New(),
		Title:      "The Drowned Bell",
		CampaignId: &campaignId,
		Status:     entity.StoryStatusInProgress,
		AiContext:  "The party seeks the bell stolen from Duskmere's chapel.",
	}
}

func TestBuildContainsAllNames(t *testing.T) {
	campaign := fixtureCampaign()
	story := fixtureStory(campaign.Id)

	got := NewContextBuilder(story, campaign, fixtureCharacters()).Build()

	assert.Contains(t, got, "The Shattered Vale")
	assert.Contains(t, got, "Kaelen")
	assert.Contains(t, got, "Brunhild")
	assert.Contains(t, got, "Duskmere")
	assert.Contains(t, got, "The Sunken Crypt")
	assert.Contains(t, got, "Mara Voss")
	assert.Contains(t, got, "The Drowned Bell")
}

func TestBuildIsDeterministic(t *testing.T) {
	campaign := fixtureCampaign()
	story := fixtureStory(campaign.Id)
	chars := fixtureCharacters()

	first := NewContextBuilder(story, campaign, chars).Build()
	second := NewContextBuilder(story, campaign, chars).Build()

	assert.Equal(t, first, second, "identical inputs must yield byte-identical output")
}

func TestBuildCharacterFallbacks(t *testing.T) {
	campaign := fixtureCampaign()
	story := fixtureStory(campaign.Id)

	got := NewContextBuilder(story, campaign, fixtureCharacters()).Build()

	// Brunhild has no skills, inventory or background.
	assert.Contains(t, got, FallbackNoSkills)
	assert.Contains(t, got, FallbackNoInventory)
	assert.Contains(t, got, FallbackNoBackground)

	// Kaelen has all of them.
	assert.Contains(t, got, "Arcana, History")
	assert.Contains(t, got, "Spellbook, Dagger")
	assert.Contains(t, got, "Exiled court mage.")
	assert.Contains(t, got, "strength: 8, dexterity: 14, constitution: 12, intelligence: 18, wisdom: 13, charisma: 10")
}

func TestBuildMissingWorldDescription(t *testing.T) {
	campaign := fixtureCampaign()
	campaign.WorldDescription = ""
	story := fixtureStory(campaign.Id)

	got := NewContextBuilder(story, campaign, nil).Build()

	assert.Contains(t, got, FallbackWorldDescription)
	assert.NotContains(t, got, "World: \n")
}

func TestBuildNilCampaign(t *testing.T) {
	story := fixtureStory(uuid.New())

	got := NewContextBuilder(story, nil, nil).Build()

	assert.Contains(t, got, FallbackCampaignName)
	assert.Contains(t, got, FallbackSetting)
	assert.Contains(t, got, FallbackWorldDescription)
	assert.Contains(t, got, FallbackNoLocations)
	assert.Contains(t, got, FallbackNoNPCs)
}

func TestBuildEmptyCampaignCollections(t *testing.T) {
	campaign := fixtureCampaign()
	campaign.Locations = nil
	campaign.NPCs = nil
	story := fixtureStory(campaign.Id)

	got := NewContextBuilder(story, campaign, nil).Build()

	assert.Contains(t, got, FallbackNoLocations)
	assert.Contains(t, got, FallbackNoNPCs)
}
