/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package snowball

// Observer receives notifications about internal events of generator.
// Callbacks are invoked synchronously from the minting goroutine, they must
// not block.
type Observer interface {
	// Spawn is called when new worker is created
	Spawn(thread int64)
	// Rollover is called when worker advances to new time unit
	Rollover(thread int64)
	// Stall is called when wall clock has not moved past the time unit
	// already used by the worker, the time unit is forced forward.
	Stall(thread int64)
	// Conflict is called when timeline update lost compare-and-swap race
	Conflict(thread int64)
}

type silent struct{}

func (silent) Spawn(int64)    {}
func (silent) Rollover(int64) {}
func (silent) Stall(int64)    {}
func (silent) Conflict(int64) {}
