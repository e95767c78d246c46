package prompt

import (
	"fmt"
	"strings"

	"dungeon-master-be/internal/entity"
)

// Fixed fallback phrases. Missing optional fields are always substituted,
// never omitted, so the assembled prompt has a stable structure regardless
// of data completeness.
const (
	FallbackCampaignName     = "Unnamed Campaign"
	FallbackSetting          = "Generic Fantasy Setting"
	FallbackWorldDescription = "No world description provided"
	FallbackNoLocations      = "No locations defined"
	FallbackNoNPCs           = "No NPCs defined"
	FallbackNoSkills         = "No special skills"
	FallbackNoInventory      = "No items in inventory"
	FallbackNoBackground     = "No background provided"
	FallbackUnknownTitle     = "Untitled Story"
)

// CharacterSheet pairs a character with its denormalized inventory item
// names, which live in sibling records rather than on the character itself.
type CharacterSheet struct {
	Character *entity.Character
	Inventory []string
}

// ContextBuilder assembles the initial system-role message for a story
// session by denormalizing the campaign, characters, locations and NPCs
// into natural-language text. The assembly is pure and deterministic; it
// performs no I/O.
type ContextBuilder struct {
	story      *entity.Story
	campaign   *entity.Campaign
	characters []CharacterSheet
}

func NewContextBuilder(story *entity.Story, campaign *entity.Campaign, characters []CharacterSheet) *ContextBuilder {
	return &ContextBuilder{
		story:      story,
		campaign:   campaign,
		characters: characters,
	}
}

// Build produces the system message content in fixed order: preamble,
// campaign, characters, locations, NPCs, story.
func (b *ContextBuilder) Build() string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeCampaign(&prompt)
	b.writeCharacters(&prompt)
	b.writeLocations(&prompt)
	b.writeNPCs(&prompt)
	b.writeStory(&prompt)

	return prompt.String()
}

func (b *ContextBuilder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString("You are the dungeon master for a tabletop roleplaying session. ")
	prompt.WriteString("Narrate the world vividly, voice its inhabitants, and respond to the players' actions ")
	prompt.WriteString("with consequences that follow from the established fiction. ")
	prompt.WriteString("Stay in character as the narrator at all times.\n\n")
}

func (b *ContextBuilder) writeCampaign(prompt *strings.Builder) {
	name := FallbackCampaignName
	setting := FallbackSetting
	world := FallbackWorldDescription

	if b.campaign != nil {
		if b.campaign.Name != "" {
			name = b.campaign.Name
		}
		if b.campaign.Setting != "" {
			setting = b.campaign.Setting
		}
		if b.campaign.WorldDescription != "" {
			world = b.campaign.WorldDescription
		}
	}

	prompt.WriteString("Campaign: " + name + "\n")
	prompt.WriteString("Setting: " + setting + "\n")
	prompt.WriteString("World: " + world + "\n\n")
}

func (b *ContextBuilder) writeCharacters(prompt *strings.Builder) {
	prompt.WriteString("Player Characters:\n")
	if len(b.characters) == 0 {
		prompt.WriteString("No characters in this party.\n\n")
		return
	}

	for _, sheet := range b.characters {
		c := sheet.Character

		race := c.Race
		if c.Subrace != "" {
			race = race + " (" + c.Subrace + ")"
		}

		skills := FallbackNoSkills
		if len(c.Skills) > 0 {
			skills = strings.Join(c.Skills, ", ")
		}

		inventory := FallbackNoInventory
		if len(sheet.Inventory) > 0 {
			inventory = strings.Join(sheet.Inventory, ", ")
		}

		background := FallbackNoBackground
		if c.Background != "" {
			background = c.Background
		}

		prompt.WriteString(fmt.Sprintf("%s, a level %d %s %s. ", c.Name, c.Level, race, c.Class))
		prompt.WriteString("Abilities: " + formatStats(c.Stats) + ". ")
		prompt.WriteString("Skills: " + skills + ". ")
		prompt.WriteString("Inventory: " + inventory + ". ")
		prompt.WriteString("Background: " + background + "\n")
	}
	prompt.WriteString("\n")
}

func (b *ContextBuilder) writeLocations(prompt *strings.Builder) {
	prompt.WriteString("Locations:\n")
	if b.campaign == nil || len(b.campaign.Locations) == 0 {
		prompt.WriteString(FallbackNoLocations + "\n\n")
		return
	}

	for _, loc := range b.campaign.Locations {
		prompt.WriteString(fmt.Sprintf("%s (%s): %s\n", loc.Name, loc.Type, loc.Description))
	}
	prompt.WriteString("\n")
}

func (b *ContextBuilder) writeNPCs(prompt *strings.Builder) {
	prompt.WriteString("NPCs:\n")
	if b.campaign == nil || len(b.campaign.NPCs) == 0 {
		prompt.WriteString(FallbackNoNPCs + "\n\n")
		return
	}

	for _, npc := range b.campaign.NPCs {
		prompt.WriteString(fmt.Sprintf("%s (%s): %s\n", npc.Name, npc.Role, npc.Description))
	}
	prompt.WriteString("\n")
}

func (b *ContextBuilder) writeStory(prompt *strings.Builder) {
	title := FallbackUnknownTitle
	if b.story != nil && b.story.Title != "" {
		title = b.story.Title
	}

	prompt.WriteString("Story: " + title + "\n")
	if b.story != nil {
		prompt.WriteString("Status: " + string(b.story.Status) + "\n")
		if b.story.AiContext != "" {
			prompt.WriteString("Additional context: " + b.story.AiContext + "\n")
		}
	}
}

// formatStats renders the six abilities as a comma-joined "stat: value"
// list in a fixed order.
func formatStats(s entity.AbilityScores) string {
	return fmt.Sprintf("strength: %d, dexterity: %d, constitution: %d, intelligence: %d, wisdom: %d, charisma: %d",
		s.Strength, s.Dexterity, s.Constitution, s.Intelligence, s.Wisdom, s.Charisma)
}
