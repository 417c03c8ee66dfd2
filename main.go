package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var Version = "0.1.0"

var (
	currentDir, _ = os.Getwd()
	rootCmd       = &cobra.Command{
		Use:   "dir-import",
		Short: "Expand JavaScript directory imports into per-file imports",
		Long: `Rewrites imports of whole directories, like import * as lib from './lib',
into one import per module file plus the code assembling them into a single object.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

var docsCmd = &cobra.Command{
	Use:   "doc-gen",
	Short: "Generate CLI documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll("./docs", 0755); err != nil {
			return err
		}
		return doc.GenMarkdownTree(rootCmd, "./docs")
	},
}

// ---------------- shared flags ----------------

var (
	ruleCwd        string
	ruleConfigPath string
	ruleExts       []string
	ruleNoStrip    bool
	ruleSnakeCase  bool
	ruleExclude    []string
	ruleSort       bool
	ruleVerbose    bool
)

func addRuleFlags(command *cobra.Command) {
	command.Flags().StringVarP(&ruleCwd, "cwd", "c", currentDir,
		"Working directory for the command")
	command.Flags().StringVar(&ruleConfigPath, "config", "",
		"Path to config file (default: dir-import.config.jsonc or .dir-import.yaml in cwd)")
	command.Flags().StringSliceVar(&ruleExts, "exts", nil,
		"Extensions treated as modules (default: js,mjs,jsx)")
	command.Flags().BoolVar(&ruleNoStrip, "nostrip", false,
		"Keep file extensions in emitted import paths")
	command.Flags().BoolVar(&ruleSnakeCase, "snake-case", false,
		"Derive snake_case property names instead of camelCase")
	command.Flags().StringSliceVar(&ruleExclude, "exclude", nil,
		"Glob patterns of expanded files to leave out, relative to the imported directory")
	command.Flags().BoolVar(&ruleSort, "sort", false,
		"Sort expanded files by path instead of keeping directory order")
	command.Flags().BoolVarP(&ruleVerbose, "verbose", "v", false,
		"Log why each import was expanded or skipped")
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dir-import"})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadRuleConfig merges the config file, when there is one, with flags the user set.
func loadRuleConfig(cmd *cobra.Command, cwd string) (DirImportConfig, error) {
	config := DefaultConfig()
	configPath := ruleConfigPath
	if configPath == "" {
		found, err := FindConfigFile(cwd)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		configPath = found
	}
	if configPath != "" {
		loaded, err := LoadConfig(ResolveAbsolutePath(cwd, configPath))
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("exts") {
		exts, err := normalizeExts("--exts", ruleExts)
		if err != nil {
			return config, err
		}
		config.Exts = exts
	}
	if flags.Changed("nostrip") {
		config.NoStrip = ruleNoStrip
	}
	if flags.Changed("snake-case") {
		config.SnakeCase = ruleSnakeCase
	}
	if flags.Changed("exclude") {
		for i, pattern := range ruleExclude {
			if err := validatePattern(pattern); err != nil {
				return config, fmt.Errorf("--exclude[%d]: %w", i, err)
			}
		}
		config.Exclude = ruleExclude
	}
	if flags.Changed("sort") {
		config.Sort = ruleSort
	}
	return config, nil
}

func buildTransformer(cmd *cobra.Command, cwd string) (*Transformer, error) {
	config, err := loadRuleConfig(cmd, cwd)
	if err != nil {
		return nil, err
	}
	options, err := config.Options()
	if err != nil {
		return nil, err
	}
	moduleExts := options.Exts
	if moduleExts == nil {
		moduleExts = defaultModuleExts
	}
	resolver := NewNodeResolver(append(append([]string{}, moduleExts...), config.ResolveExtensions...)...)
	rule := NewDirImportRule(options, resolver, newLogger(ruleVerbose))
	return NewTransformer(rule), nil
}

// ---------------- transform ----------------

var (
	transformWrite   bool
	transformStdin   bool
	transformSummary bool
	transformIgnore  []string
)

var transformCmd = &cobra.Command{
	Use:   "transform [paths...]",
	Short: "Rewrite directory imports in files",
	Long: `Expands directory imports in the given files, or in every JS/TS file under the
given directories (respecting .gitignore). A single file is printed to stdout unless
--write is set; several files require --write.`,
	Example: `  dir-import transform src/index.js
  dir-import transform src --write --summary
  cat src/index.js | dir-import transform --stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(ruleCwd)
		transformer, err := buildTransformer(cmd, cwd)
		if err != nil {
			return err
		}

		if transformStdin {
			code, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, err := transformer.TransformSource(code, cwd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Code)
			return nil
		}

		if len(args) == 0 {
			return errors.New("no paths given, pass files or directories or use --stdin")
		}

		files, err := collectSourceFiles(cwd, args, transformIgnore)
		if err != nil {
			return err
		}
		if len(files) > 1 && !transformWrite {
			return fmt.Errorf("%d files matched, use --write to rewrite them in place", len(files))
		}

		changesByFile := make(map[string][]Change, len(files))
		expandedCount := 0
		expandedFiles := 0
		for _, file := range files {
			result, changes, err := transformer.TransformFile(file)
			if err != nil {
				return err
			}
			if transformSummary {
				printTransformSummary(cmd.ErrOrStderr(), RelativeToCwd(cwd, file), result)
			}
			if expanded := len(result.Expanded()); expanded > 0 {
				expandedCount += expanded
				expandedFiles++
			}
			if !transformWrite {
				fmt.Fprint(cmd.OutOrStdout(), result.Code)
				continue
			}
			if len(changes) > 0 {
				changesByFile[file] = changes
			}
		}

		if transformWrite {
			if err := ApplyFileChanges(changesByFile); err != nil {
				return err
			}
		}
		if transformSummary {
			color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Expanded %d directory imports in %d files\n", expandedCount, expandedFiles)
		}
		return nil
	},
}

func collectSourceFiles(cwd string, args []string, ignore []string) ([]string, error) {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		absolutePath := ResolveAbsolutePath(cwd, arg)
		info, err := os.Stat(absolutePath)
		if err != nil {
			return nil, fmt.Errorf("path '%s': %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, absolutePath)
			continue
		}
		matchers := append(CreateGlobMatchers(ignore, absolutePath), FindGitIgnoreMatchersUpToRepoRoot(absolutePath)...)
		files = GetSourceFiles(absolutePath, files, matchers)
	}
	return files, nil
}

func printTransformSummary(w io.Writer, file string, result TransformResult) {
	expanded := result.Expanded()
	if len(expanded) == 0 {
		return
	}
	fmt.Fprintln(w, file)
	for _, imp := range expanded {
		color.New(color.FgCyan).Fprintf(w, "  %s", imp.Source)
		fmt.Fprintf(w, " (%s) -> %d files\n", imp.Mode, len(imp.Files))
	}
}

// ---------------- expand ----------------

var expandFrom string

var expandCmd = &cobra.Command{
	Use:   "expand <import-source>",
	Short: "Show how a directory import would be expanded",
	Long: `Classifies an import source as seen from --from and lists the files it expands to,
with the property name derived for each.`,
	Example: "dir-import expand './components/*' --from src/index.js",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(ruleCwd)
		transformer, err := buildTransformer(cmd, cwd)
		if err != nil {
			return err
		}
		rule := transformer.Rule

		req := ImportRequest{Source: args[0], BaseDir: cwd}
		if expandFrom != "" {
			req.SourcePath = ResolveAbsolutePath(cwd, expandFrom)
		}
		classification, files, skip, err := rule.Expand(req)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if skip != SkipNone {
			color.New(color.FgYellow).Fprintf(out, "Not expanded: %s\n", skip)
			return nil
		}

		plan := PlanRewrite(req, classification, files, nameTransformFor(rule.Options.SnakeCase), NewScope())
		fmt.Fprintf(out, "Directory: %s\nMode: %s\n\n", RelativeToCwd(cwd, classification.CheckPath), classification.Mode)
		maxLen := 0
		for _, file := range plan.Files {
			maxLen = max(maxLen, len(file.Specifier))
		}
		for _, file := range plan.Files {
			fmt.Fprintf(out, "%s  %s\n", PadRight(file.Specifier, ' ', maxLen), file.Name)
		}
		fmt.Fprintf(out, "\nTotal: %d\n", len(plan.Files))
		return nil
	},
}

// ---------------- bundle ----------------

var (
	bundleOutfile  string
	bundleFormat   string
	bundlePlatform string
	bundleMinify   bool
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <entry-point>",
	Short: "Bundle an entry point with esbuild, expanding directory imports",
	Example: `  dir-import bundle src/index.js --outfile dist/index.js
  dir-import bundle src/index.js --format cjs --platform node`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(ruleCwd)
		transformer, err := buildTransformer(cmd, cwd)
		if err != nil {
			return err
		}
		outfile := ""
		if bundleOutfile != "" {
			outfile = ResolveAbsolutePath(cwd, bundleOutfile)
		}
		code, err := Bundle(BundleOptions{
			EntryPoint: ResolveAbsolutePath(cwd, args[0]),
			Outfile:    outfile,
			Format:     bundleFormat,
			Platform:   bundlePlatform,
			Minify:     bundleMinify,
			Cwd:        cwd,
		}, transformer)
		if err != nil {
			return err
		}
		if outfile == "" {
			_, err = cmd.OutOrStdout().Write(code)
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", RelativeToCwd(cwd, outfile))
		return nil
	},
}

// ---------------- init ----------------

var initCwd string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a dir-import.config.jsonc with default options",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(initCwd)
		if existing, err := FindConfigFile(cwd); err == nil {
			return fmt.Errorf("config file already exists at %s", existing)
		}
		configPath := filepath.Join(cwd, configFileNames[0])
		if err := WriteConfig(configPath, DefaultConfig()); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
		return nil
	},
}

func init() {
	addRuleFlags(transformCmd)
	transformCmd.Flags().BoolVarP(&transformWrite, "write", "w", false,
		"Rewrite files in place")
	transformCmd.Flags().BoolVar(&transformStdin, "stdin", false,
		"Read code from stdin and print the result; relative imports resolve against cwd")
	transformCmd.Flags().BoolVar(&transformSummary, "summary", false,
		"Print expanded imports per file to stderr")
	transformCmd.Flags().StringSliceVar(&transformIgnore, "ignore", []string{},
		"Glob patterns of source files to skip when walking directories")

	addRuleFlags(expandCmd)
	expandCmd.Flags().StringVarP(&expandFrom, "from", "f", "",
		"File containing the import (default: a file in cwd)")

	addRuleFlags(bundleCmd)
	bundleCmd.Flags().StringVarP(&bundleOutfile, "outfile", "o", "",
		"Output file (default: print to stdout)")
	bundleCmd.Flags().StringVar(&bundleFormat, "format", "esm",
		"Output format: esm, cjs or iife")
	bundleCmd.Flags().StringVar(&bundlePlatform, "platform", "browser",
		"Target platform: browser, node or neutral")
	bundleCmd.Flags().BoolVar(&bundleMinify, "minify", false,
		"Minify the bundle")

	initCmd.Flags().StringVarP(&initCwd, "cwd", "c", currentDir,
		"Directory to create the config file in")

	rootCmd.AddCommand(transformCmd, expandCmd, bundleCmd, initCmd, docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
