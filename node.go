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

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"os"
	"strconv"
)

// EnvNodeID is environment variable that defines node identifier
const EnvNodeID = "CONFIG_SNOWBALL_NODE_ID"

// NodeFromEnv reads ⟨𝒏⟩ identifier from environment variable.
// Integer values are used as-is, any other string is hashed.
//
// CONFIG_SNOWBALL_NODE_ID - defines node id
func NodeFromEnv() int64 {
	val := os.Getenv(EnvNodeID)
	if node, err := strconv.ParseInt(val, 10, 64); err == nil {
		return node
	}

	h := sha256.New()
	h.Write([]byte(val))
	hash := h.Sum(nil)
	return int64(hash[0])<<24 | int64(hash[1])<<16 | int64(hash[2])<<8 | int64(hash[3])
}

// NodeRandom draws ⟨𝒏⟩ identifier using cryptographic random generator
func NodeRandom() int64 {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		panic(err.Error())
	}

	return int64(binary.BigEndian.Uint64(bytes) >> 1)
}
