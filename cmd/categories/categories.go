// Package categories implements the category registry commands
package categories

import (
	"errors"
	"fmt"

	"unitfin/cmd/root"
	"unitfin/internal/financeerror"
	"unitfin/internal/logging"
	"unitfin/internal/models"
	"unitfin/internal/registry"
	"unitfin/internal/store"

	"github.com/spf13/cobra"
)

var (
	recordType string
	name       string
	from       string
	to         string
)

// Cmd represents the categories command group
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage a unit's category names",
	Long: `List, add and rename the category names of a unit. Names are unique
case-insensitively within a unit and record type; categories are never deleted.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories for a unit and record type",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Run:   addFunc,
}

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a category",
	Run:   renameFunc,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Merge the legacy local category cache into the registry",
	Run:   migrateFunc,
}

func init() {
	Cmd.PersistentFlags().StringVarP(&recordType, "type", "t", "income", "Record type (income or expense)")
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Category name (required)")
	renameCmd.Flags().StringVar(&from, "from", "", "Existing category name (required)")
	renameCmd.Flags().StringVar(&to, "to", "", "New category name (required)")

	if err := addCmd.MarkFlagRequired("name"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}
	if err := renameCmd.MarkFlagRequired("from"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}
	if err := renameCmd.MarkFlagRequired("to"); err != nil {
		root.Log.Warnf("Failed to mark flag required: %v", err)
	}

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(renameCmd)
	Cmd.AddCommand(migrateCmd)
}

// newRegistry wires the file-backed source into a registry.
func newRegistry() *registry.Registry {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	source := store.NewFileSource(root.DataPath(root.Cfg.Data.CategoriesFile), logger)
	return registry.New(source, logger)
}

func requireUnitAndType() models.RecordType {
	if root.SharedFlags.Unit == "" {
		root.Log.Fatal("Unit identifier is required (--unit)")
	}
	rt := models.RecordType(recordType)
	if !rt.IsValid() {
		root.Log.Fatalf("Unknown record type: %s", recordType)
	}
	return rt
}

func listFunc(cmd *cobra.Command, args []string) {
	rt := requireUnitAndType()

	entries, err := newRegistry().Entries(root.SharedFlags.Unit, rt)
	if err != nil {
		root.Log.Fatalf("Error listing categories: %v", err)
	}
	if len(entries) == 0 {
		root.Log.Info("No categories registered")
		return
	}
	for _, entry := range entries {
		fmt.Printf("%s (%s)\n", entry.Name, entry.Type)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	rt := requireUnitAndType()

	err := newRegistry().Add(root.SharedFlags.Unit, rt, name)
	if err != nil {
		var conflict *financeerror.ConflictError
		if errors.As(err, &conflict) {
			root.Log.Fatalf("Conflict: %v", conflict)
		}
		root.Log.Fatalf("Error adding category: %v", err)
	}
	root.Log.Infof("Added category %q", name)
}

func renameFunc(cmd *cobra.Command, args []string) {
	rt := requireUnitAndType()

	err := newRegistry().Rename(root.SharedFlags.Unit, rt, from, to)
	if err != nil {
		var conflict *financeerror.ConflictError
		if errors.As(err, &conflict) {
			root.Log.Fatalf("Conflict: %v", conflict)
		}
		root.Log.Fatalf("Error renaming category: %v", err)
	}
	root.Log.Infof("Renamed category %q to %q", from, to)
}

func migrateFunc(cmd *cobra.Command, args []string) {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	legacy := store.NewLegacyFileStore(root.DataPath(root.Cfg.Data.LegacyCacheFile), logger)

	if err := newRegistry().MigrateLegacyCache(legacy); err != nil {
		root.Log.Fatalf("Error migrating legacy cache: %v", err)
	}
	root.Log.Info("Legacy category cache migration completed")
}
