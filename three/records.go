// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package three

// mutationValues returns the value written by each mutation of a batch
// of attribute mutation records, given the old value of each record and
// the value after the batch. Each mutation wrote the value that the next
// one replaced, and the last one wrote the current value.
func mutationValues(olds []string, current string) []string {
	if len(olds) == 0 {
		return nil
	}
	vals := make([]string, len(olds))
	copy(vals, olds[1:])
	vals[len(vals)-1] = current
	return vals
}
