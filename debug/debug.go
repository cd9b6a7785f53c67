// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package debug gates expensive invariant checks and verbose logging behind
// the debug build tag.
//
// Build with -tags=debug to enable them.
package debug
