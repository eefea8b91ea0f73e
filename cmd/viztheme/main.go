package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/viztheme/theme"
	"github.com/dshills/viztheme/theme/loader"
)

var (
	outPath    string
	appVersion = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "viztheme",
	Short: "viztheme – plotting theme inspection and editing",
	Long:  "Viztheme manages plotting theme documents: list built-in presets, export them to JSON, and show, validate, or edit theme files.",
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in presets",
	Run:   runPresets,
}

var exportCmd = &cobra.Command{
	Use:   "export <preset>",
	Short: "Export a preset as a JSON theme document",
	Args:  cobra.ExactArgs(1),
	Run:   runExport,
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a readable report of a theme file",
	Long:  "Load a theme file (.json, .toml, or .lua) over the defaults and print every field.",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a theme file loads cleanly",
	Args:  cobra.ExactArgs(1),
	Run:   runValidate,
}

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Read one field from a JSON theme file",
	Long:  "Read a dotted-path field from a JSON theme file, e.g. viztheme get mytheme.json font.size",
	Args:  cobra.ExactArgs(2),
	Run:   runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Set one field in a JSON theme file",
	Long:  "Set a dotted-path field in a JSON theme file and validate the result. Values parse as JSON when possible, otherwise as strings.",
	Args:  cobra.ExactArgs(3),
	Run:   runSet,
}

func init() {
	rootCmd.Version = appVersion
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")
	setCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: edit in place)")
	rootCmd.AddCommand(presetsCmd, exportCmd, showCmd, validateCmd, getCmd, setCmd)
}

func runPresets(cmd *cobra.Command, args []string) {
	for _, name := range theme.PresetNames() {
		fmt.Println(name)
	}
}

func runExport(cmd *cobra.Command, args []string) {
	t, err := theme.Preset(args[0])
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	doc, err := t.MarshalJSON()
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	pretty := gjson.GetBytes(doc, "@pretty").Raw
	if outPath == "" {
		fmt.Print(pretty)
		return
	}
	if err := os.WriteFile(outPath, []byte(pretty), 0o644); err != nil {
		log.Fatalf("export: %v", err)
	}
}

func runShow(cmd *cobra.Command, args []string) {
	t, err := loadThemeFile(args[0])
	if err != nil {
		log.Fatalf("show: %v", err)
	}
	fmt.Print(t.String())
}

func runValidate(cmd *cobra.Command, args []string) {
	if _, err := loadThemeFile(args[0]); err != nil {
		log.Fatalf("validate: %v", err)
	}
	fmt.Printf("%s: OK\n", args[0])
}

func runGet(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("get: %v", err)
	}
	res := gjson.GetBytes(data, args[1])
	if !res.Exists() {
		log.Fatalf("get: no value at %q", args[1])
	}
	fmt.Println(res.String())
}

func runSet(cmd *cobra.Command, args []string) {
	path, key, raw := args[0], args[1], args[2]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("set: %v", err)
	}

	var doc string
	if gjson.Valid(raw) {
		doc, err = sjson.SetRaw(string(data), key, raw)
	} else {
		doc, err = sjson.Set(string(data), key, raw)
	}
	if err != nil {
		log.Fatalf("set: %v", err)
	}

	// The edited document must still load as a valid theme.
	var t theme.Theme
	if err := t.UnmarshalJSON([]byte(doc)); err != nil {
		log.Fatalf("set: result is not a valid theme: %v", err)
	}

	target := outPath
	if target == "" {
		target = path
	}
	pretty := gjson.Get(doc, "@pretty").Raw
	if err := os.WriteFile(target, []byte(pretty), 0o644); err != nil {
		log.Fatalf("set: %v", err)
	}
}

// loadThemeFile reads any supported theme format over the defaults.
func loadThemeFile(path string) (*theme.Theme, error) {
	var (
		doc map[string]any
		err error
	)
	switch {
	case strings.HasSuffix(path, ".json"):
		doc, err = loader.NewJSONLoader(path).Load()
	case strings.HasSuffix(path, ".toml"):
		doc, err = loader.NewTOMLLoader(path).Load()
	case strings.HasSuffix(path, ".lua"):
		doc, err = loader.NewLuaLoader(path).Load()
	default:
		return nil, fmt.Errorf("unsupported theme file %q (want .json, .toml, or .lua)", path)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("theme file %s does not exist", path)
	}
	return theme.FromMap(doc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
