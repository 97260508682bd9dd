// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output serializes fetched holidays to a file. The format is chosen
// once, from the output path's extension, when the writer is constructed.
package output
