package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingInput is returned when the primary stylesheet cannot be found.
	ErrMissingInput = zerr.New("input stylesheet not found")

	// ErrFileNotFound is returned by a timestamp reader when a path does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrCompilerConstruction is returned when the compiler engine cannot compile the stylesheet source.
	ErrCompilerConstruction = zerr.New("failed to construct compiler")

	// ErrCompilerBuild is returned when a compiler handle fails to produce CSS.
	ErrCompilerBuild = zerr.New("failed to build utilities")

	// ErrUnknownUtility is returned when @apply references a utility the engine does not know.
	ErrUnknownUtility = zerr.New("cannot apply unknown utility class")

	// ErrPluginNotFound is returned when a plugin specifier cannot be resolved.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrPluginLoadFailed is returned when a resolved plugin file cannot be read or decoded.
	ErrPluginLoadFailed = zerr.New("failed to load plugin")

	// ErrScannerFailed is returned when the content scanner fails.
	ErrScannerFailed = zerr.New("failed to scan content sources")

	// ErrOptimizerFailed is returned when the optimizer cannot transform the CSS.
	ErrOptimizerFailed = zerr.New("failed to optimize css")

	// ErrStylesheetParse is returned when a stylesheet cannot be parsed.
	ErrStylesheetParse = zerr.New("failed to parse stylesheet")

	// ErrImportFailed is returned when an @import target cannot be read.
	ErrImportFailed = zerr.New("failed to resolve import")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists between cwd and the filesystem root.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrNoEntries is returned when neither the config nor the flags name an input stylesheet.
	ErrNoEntries = zerr.New("no input stylesheet specified")

	// ErrInvalidOptimize is returned when the optimize option is neither a bool nor a mapping.
	ErrInvalidOptimize = zerr.New("invalid optimize option, expected a bool or {minify: bool}")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrOutputWriteFailed is returned when the generated CSS cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output stylesheet")

	// ErrBuildFailed is returned when at least one entry failed to build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)
