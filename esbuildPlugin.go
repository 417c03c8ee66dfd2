package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

const esbuildPluginName = "dir-import"

var loadersByExt = map[string]api.Loader{
	".js":  api.LoaderJS,
	".mjs": api.LoaderJS,
	".cjs": api.LoaderJS,
	".jsx": api.LoaderJSX,
	".ts":  api.LoaderTS,
	".mts": api.LoaderTS,
	".cts": api.LoaderTS,
	".tsx": api.LoaderTSX,
}

// NewEsbuildPlugin returns a plugin that expands directory imports of every JS/TS
// file esbuild loads from disk.
func NewEsbuildPlugin(transformer *Transformer) api.Plugin {
	return api.Plugin{
		Name: esbuildPluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: `\.(m|c)?(j|t)sx?$`, Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					if strings.Contains(args.Path, string(filepath.Separator)+"node_modules"+string(filepath.Separator)) {
						// let esbuild load dependencies itself
						return api.OnLoadResult{}, nil
					}
					code, err := os.ReadFile(args.Path)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					result, err := transformer.TransformCode(code, args.Path)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					contents := result.Code
					return api.OnLoadResult{
						Contents:   &contents,
						ResolveDir: filepath.Dir(args.Path),
						Loader:     loadersByExt[filepath.Ext(args.Path)],
					}, nil
				})
		},
	}
}

type BundleOptions struct {
	EntryPoint string
	Outfile    string // empty returns the bundle instead of writing it
	Format     string // esm, cjs or iife
	Platform   string // browser, node or neutral
	Minify     bool
	Cwd        string
}

var bundleFormats = map[string]api.Format{
	"":     api.FormatESModule,
	"esm":  api.FormatESModule,
	"cjs":  api.FormatCommonJS,
	"iife": api.FormatIIFE,
}

var bundlePlatforms = map[string]api.Platform{
	"":        api.PlatformBrowser,
	"browser": api.PlatformBrowser,
	"node":    api.PlatformNode,
	"neutral": api.PlatformNeutral,
}

// Bundle builds opts.EntryPoint with esbuild, expanding directory imports on load.
// The bundled code is returned when opts.Outfile is empty.
func Bundle(opts BundleOptions, transformer *Transformer) ([]byte, error) {
	format, ok := bundleFormats[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unknown format '%s', expected esm, cjs or iife", opts.Format)
	}
	platform, ok := bundlePlatforms[opts.Platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform '%s', expected browser, node or neutral", opts.Platform)
	}

	result := api.Build(api.BuildOptions{
		EntryPoints:       []string{opts.EntryPoint},
		AbsWorkingDir:     opts.Cwd,
		Bundle:            true,
		Write:             opts.Outfile != "",
		Outfile:           opts.Outfile,
		Format:            format,
		Platform:          platform,
		MinifyWhitespace:  opts.Minify,
		MinifyIdentifiers: opts.Minify,
		MinifySyntax:      opts.Minify,
		LogLevel:          api.LogLevelSilent,
		Plugins:           []api.Plugin{NewEsbuildPlugin(transformer)},
	})

	if len(result.Errors) > 0 {
		formatted := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})
		return nil, errors.New(strings.TrimSpace(strings.Join(formatted, "\n")))
	}
	if opts.Outfile != "" || len(result.OutputFiles) == 0 {
		return nil, nil
	}
	return result.OutputFiles[0].Contents, nil
}
