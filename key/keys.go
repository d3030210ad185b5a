// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Input - these keys locate and memoize the content catalog consumed by every command.
const (
	CatalogPath     = "catalog.path"
	CatalogCache    = "catalog.cache"
	CatalogCacheTTL = "catalog.cache_ttl_hours"
)

// Search Interaction - these keys tune query normalization and result presentation.
const (
	SearchMinTermLength        = "search.min_term_length"
	SearchMaxQueryLength       = "search.max_query_length"
	SearchLimit                = "search.limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Series Organization - these keys govern how assembled series are reported.
const (
	SeriesWarnInvalid = "series.warn_invalid"
)

// History Tracking - these keys configure the persistence of watch state.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite    = "logs.write"
	LogsLevel    = "logs.level"
	LogsJson     = "logs.json"
	LogsKeepDays = "logs.keep_days"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
