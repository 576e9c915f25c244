// Package forge implements the forge command: it opens (or creates) a
// character database, seeds the demo world, and runs a demonstration
// character through creation and progression, printing the resulting sheet.
package forge

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/louisbranch/skillforge/internal/character/command"
	"github.com/louisbranch/skillforge/internal/character/creation"
	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/character/service"
	platformcmd "github.com/louisbranch/skillforge/internal/platform/cmd"
	"github.com/louisbranch/skillforge/internal/rulebook"
	"github.com/louisbranch/skillforge/internal/seed"
	"github.com/louisbranch/skillforge/internal/storage/sqlite"
)

// Config carries the forge command's environment configuration.
type Config struct {
	// DatabasePath is the sqlite database file. ":memory:" runs ephemeral.
	DatabasePath string `env:"SKILLFORGE_DB_PATH" envDefault:"skillforge.db"`
	// CharacterName names the demo character.
	CharacterName string `env:"SKILLFORGE_CHARACTER_NAME" envDefault:"Mara"`
}

// Run executes the forge demo: seed, create, progress, print.
func Run(ctx context.Context, cfg Config, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(platformcmd.ServiceForge, flag.ContinueOnError)
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "sqlite database path")
	fs.StringVar(&cfg.CharacterName, "name", cfg.CharacterName, "demo character name")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	if err := seed.Apply(ctx, store); err != nil {
		return fmt.Errorf("seed demo world: %w", err)
	}
	log.Printf("seeded world %s", seed.WorldID)

	svc := &service.Service{
		Events: store,
		Audit:  store,
		Resolver: creation.Resolver{
			Stores: creation.Stores{
				Lineages:       store,
				Natures:        store,
				Customizations: store,
				Aspects:        store,
				Castes:         store,
				Educations:     store,
				Talents:        store,
				Languages:      store,
				Items:          store,
			},
		},
	}

	sheet, err := svc.Create(ctx, demoRequest(cfg.CharacterName), command.ActorTypeSystem, "")
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	characterID := sheet.State.CharacterID
	log.Printf("created character %s", characterID)

	sheet, err = progress(ctx, svc, characterID)
	if err != nil {
		return err
	}
	printSheet(stdout, sheet)
	return nil
}

func demoRequest(name string) creation.Request {
	return creation.Request{
		WorldID: seed.WorldID,
		Name:    name,
		Height:  1.7,
		Weight:  68,
		Age:     27,

		LineageID:        seed.LineageOrrin,
		NatureID:         seed.NatureWanderer,
		CustomizationIDs: []string{seed.GiftBrave, seed.DisabilityFrail},
		AspectIDs:        []string{seed.AspectWarrior, seed.AspectScholar},
		CasteID:          seed.CasteSoldier,
		EducationID:      seed.EducationScribe,

		Agility:      9,
		Coordination: 8,
		Intellect:    8,
		Presence:     8,
		Sensitivity:  8,
		Spirit:       8,
		Vigor:        8,
		Best:         rulebook.AttributeAgility,
		Worst:        rulebook.AttributeVigor,
		Optional:     []rulebook.Attribute{rulebook.AttributePresence},
		Extra:        []rulebook.Attribute{rulebook.AttributeAgility, rulebook.AttributeVigor},

		TalentIDs:   []string{seed.TalentSurvival},
		LanguageIDs: []string{seed.LanguageTrade},

		StartingWealthItemID: seed.ItemCoin,
		StartingWealthAmount: 30,
	}
}

// progress awards experience, levels the character once, and raises a skill
// rank so the printed sheet exercises the progression engines.
func progress(ctx context.Context, svc *service.Service, characterID string) (service.Sheet, error) {
	dispatch := func(cmdType command.Type, payload any) (service.Sheet, error) {
		raw, err := json.Marshal(payload)
		if err != nil {
			return service.Sheet{}, fmt.Errorf("encode %s payload: %w", cmdType, err)
		}
		sheet, err := svc.Dispatch(ctx, command.Command{
			WorldID:     seed.WorldID,
			Type:        cmdType,
			ActorType:   command.ActorTypeSystem,
			EntityID:    characterID,
			PayloadJSON: raw,
		})
		if err != nil {
			return service.Sheet{}, fmt.Errorf("%s: %w", cmdType, err)
		}
		return sheet, nil
	}

	if _, err := dispatch(domain.CommandTypeGainExperience, domain.ExperienceGainedPayload{Amount: 150}); err != nil {
		return service.Sheet{}, err
	}
	if _, err := dispatch(domain.CommandTypeLevelUp, domain.LeveledUpPayload{Attribute: rulebook.AttributeVigor}); err != nil {
		return service.Sheet{}, err
	}
	return dispatch(domain.CommandTypeIncreaseSkillRank, domain.SkillRankIncreasedPayload{Skill: rulebook.SkillSurvival})
}

func printSheet(w io.Writer, sheet service.Sheet) {
	fmt.Fprintf(w, "%s  (level %d, tier %d, %d XP, version %d)\n",
		sheet.State.Name, sheet.Level, sheet.Tier, sheet.State.Experience, sheet.Version)

	fmt.Fprintln(w, "attributes:")
	for _, view := range sheet.Attributes {
		fmt.Fprintf(w, "  %-12s %2d (%+d)", view.Attribute, view.PermanentScore, view.PermanentModifier)
		if view.TemporaryScore != view.PermanentScore {
			fmt.Fprintf(w, "  temp %2d (%+d)", view.TemporaryScore, view.TemporaryModifier)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "statistics:")
	for _, view := range sheet.Statistics {
		fmt.Fprintf(w, "  %-12s %3d\n", view.Statistic, view.Value)
	}

	fmt.Fprintln(w, "speeds:")
	for _, view := range sheet.Speeds {
		if view.Value == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-12s %3d\n", view.Kind, view.Value)
	}

	if len(sheet.State.SkillRanks) > 0 {
		fmt.Fprintln(w, "skills:")
		for _, skill := range rulebook.Skills() {
			if rank := sheet.State.SkillRanks[skill]; rank > 0 {
				fmt.Fprintf(w, "  %-12s %3d\n", skill, rank)
			}
		}
	}
	fmt.Fprintf(w, "talent points remaining: %d\n", sheet.TalentPointsRemaining)
}
