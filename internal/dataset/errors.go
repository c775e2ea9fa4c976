// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dataset

import "errors"

var (
	ErrDatasetNotFound = errors.New("data file not found")
	ErrDatasetParse    = errors.New("failed to parse data file, the JSON file may be corrupted")
	ErrDatasetFormat   = errors.New("invalid data file structure")
	ErrDatasetEmpty    = errors.New("no entries found in the data file")
)
