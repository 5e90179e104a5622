// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for scriptpick.
//
// This package implements the Cobra command hierarchy: the root command
// (parse, reconcile, browse, inject), plus validate and list subcommands.
package cmd
