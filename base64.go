//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package snowball

import "fmt"

// alphabet is ordered by ASCII code, string order follows numeric order
var alphabet []byte = []byte{
	'.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E',
	'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U',
	'V', 'W', 'X', 'Y', 'Z', '_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
}

// 64 bits in 6 bit cells, the leading cell holds 4 bits
const encodedLen = 11

func encode64(id ID) string {
	x := uint64(id)
	b := make([]byte, encodedLen)
	for i := encodedLen - 1; i >= 0; i-- {
		b[i] = alphabet[x&0x3f]
		x >>= 6
	}
	return string(b)
}

func decode64(val string) (ID, error) {
	if len(val) != encodedLen {
		return 0, fmt.Errorf("malformed identifier: %q", val)
	}

	x := uint64(0)
	for i := 0; i < len(val); i++ {
		c := val[i]
		var v byte
		switch {
		case c == '.':
			v = 0
		case c >= '0' && c <= '9':
			v = c - '0' + 1
		case c >= 'A' && c <= 'Z':
			v = c - 'A' + 11
		case c == '_':
			v = 37
		case c >= 'a' && c <= 'z':
			v = c - 'a' + 38
		default:
			return 0, fmt.Errorf("malformed identifier: %q", val)
		}

		if i == 0 && v > 0x0f {
			return 0, fmt.Errorf("identifier overflows 64 bits: %q", val)
		}
		x = x<<6 | uint64(v)
	}

	return ID(x), nil
}
