// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package refcount provides the reference count shared by handles to a single value cell.
package refcount

import (
	"fmt"
	"sync/atomic"
)

// Count is an atomic reference count. The zero Count holds no references; use Init before
// publishing the owning object.
type Count struct {
	n atomic.Int32
}

// Init sets the count to one. It must only be called before the owning object is shared.
func (c *Count) Init() {
	c.n.Store(1)
}

// Inc takes an additional reference.
func (c *Count) Inc() {
	if v := c.n.Add(1); v <= 1 {
		panic(fmt.Sprintf("refcount: increment of released object (count %d)", v))
	}
}

// Dec drops a reference and returns the remaining count. The owner must be freed exactly when
// the returned count is zero.
func (c *Count) Dec() int32 {
	v := c.n.Add(-1)
	if v < 0 {
		panic(fmt.Sprintf("refcount: count below zero (%d)", v))
	}
	return v
}

// Load returns the current count.
func (c *Count) Load() int32 {
	return c.n.Load()
}
