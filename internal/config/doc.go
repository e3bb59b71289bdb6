// Package config provides configuration loading, merging, and validation
// facilities for the car-keeper API server.
//
// Configuration is assembled from several sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (a ".env" file in the working directory is
//     loaded into the environment first, without overriding variables
//     that are already set)
//  3. JSON config file (path from -c/-config or CONFIG)
//
// Defaults are applied to whatever is still unset, then the result is
// validated. The entry point is [GetStructuredConfig].
package config
