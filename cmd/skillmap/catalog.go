package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/skillmap/internal/store"
)

const defaultCatalogPath = "catalog.db"

var catalogDBPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Skill vocabulary and course catalog subcommands",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in catalog to a SQLite file",
	Long:  "Replaces the skills and courses in the catalog file with the built-in vocabulary and course catalog.",
	RunE:  runCatalogSeed,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog in use",
	RunE:  runCatalogList,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDBPath, "db", "", "catalog file (default: catalog.path from config, then ./catalog.db)")
	catalogCmd.AddCommand(catalogSeedCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

// resolveCatalogPath picks --db, then catalog.path from the config.
// fallback is used when neither is set.
func resolveCatalogPath(fallback string) string {
	if catalogDBPath != "" {
		return catalogDBPath
	}
	if cfg, err := loadConfig(cfgPath); err == nil && cfg.Catalog.Path != "" {
		return cfg.Catalog.Path
	}
	return fallback
}

func runCatalogSeed(cmd *cobra.Command, args []string) error {
	path := resolveCatalogPath(defaultCatalogPath)

	c, err := store.NewSQLiteCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open catalog: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	vocab, catalog, _ := store.BuiltinCatalog{}.Load()
	if err := c.Seed(vocab, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %s with %d skills and %d course lists\n", path, len(vocab), len(catalog))
	return nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	path := resolveCatalogPath("")

	vocab, catalog, err := loadCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	source := "built-in"
	if path != "" {
		source = path
	}
	fmt.Printf("Catalog: %s\n\n", source)
	fmt.Printf("%-20s %s\n", "Skill", "Courses")
	fmt.Println(strings.Repeat("─", 72))

	withCourses := 0
	for _, s := range vocab {
		courses := catalog[s]
		if len(courses) == 0 {
			fmt.Printf("%-20s %s\n", s, "-")
			continue
		}
		withCourses++
		for i, c := range courses {
			name := s
			if i > 0 {
				name = ""
			}
			fmt.Printf("%-20s %s (%s)\n", name, c.Title, c.URL)
		}
	}

	fmt.Printf("\nTotal: %d skills (%d with courses)\n", len(vocab), withCourses)
	return nil
}
