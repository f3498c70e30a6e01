/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package common

import "testing"

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"text", "csv", "json", "yaml"} {
		if !validFormat(f) {
			t.Errorf("%s should be a valid format", f)
		}
	}
	for _, f := range []string{"", "xml", "TEXT"} {
		if validFormat(f) {
			t.Errorf("%q should not be a valid format", f)
		}
	}
}
