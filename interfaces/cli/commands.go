package cli

import (
	"fmt"

	"zookeepr/application/commands"
	"zookeepr/application/queries"
	"zookeepr/domain/core/entities"
	"zookeepr/domain/core/validators"
	"zookeepr/domain/specifications"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	var criteria specifications.Criteria

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.container.QueryBus.Ask(cmd.Context(), queries.ListAnimalsQuery{Criteria: criteria})
			if err != nil {
				return err
			}
			animals, ok := result.([]entities.Animal)
			if !ok {
				return fmt.Errorf("unexpected list result %T", result)
			}
			return newPrinter(opts, cmd).animals(animals)
		},
	}

	cmd.Flags().StringVar(&criteria.Species, "species", "", "only animals of this species")
	cmd.Flags().StringVar(&criteria.Diet, "diet", "", "only animals with this diet")
	cmd.Flags().StringVar(&criteria.Name, "name", "", "only animals with this name")
	cmd.Flags().StringArrayVar(&criteria.PersonalityTraits, "trait", nil, "required personality trait (repeatable)")

	return cmd
}

// NewGetCommand creates the get command.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one animal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.container.QueryBus.Ask(cmd.Context(), queries.GetAnimalQuery{AnimalID: args[0]})
			if err != nil {
				return err
			}
			animal, ok := result.(entities.Animal)
			if !ok {
				return fmt.Errorf("unexpected get result %T", result)
			}
			return newPrinter(opts, cmd).animals([]entities.Animal{animal})
		},
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	var (
		name, species, diet string
		traits              []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an animal to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate := validators.AnimalCandidate{PersonalityTraits: entities.TraitsOf(traits...)}
			if cmd.Flags().Changed("name") {
				candidate.Name = &name
			}
			if cmd.Flags().Changed("species") {
				candidate.Species = &species
			}
			if cmd.Flags().Changed("diet") {
				candidate.Diet = &diet
			}

			result, err := opts.container.CommandBus.Send(cmd.Context(), commands.CreateAnimalCommand{Candidate: candidate})
			if err != nil {
				return err
			}
			animal, ok := result.(entities.Animal)
			if !ok {
				return fmt.Errorf("unexpected add result %T", result)
			}
			return newPrinter(opts, cmd).animals([]entities.Animal{animal})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "animal name (required)")
	cmd.Flags().StringVar(&species, "species", "", "animal species (required)")
	cmd.Flags().StringVar(&diet, "diet", "", "animal diet (required)")
	cmd.Flags().StringArrayVar(&traits, "trait", nil, "personality trait (repeatable)")

	return cmd
}
