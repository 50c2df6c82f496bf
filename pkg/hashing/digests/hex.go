// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package digests

import "encoding/hex"

// FormatHex renders b as lowercase hexadecimal: two digits per byte, in
// order, leading zeros kept, no separators. An empty or nil slice yields "".
func FormatHex(b []byte) string {
	return hex.EncodeToString(b)
}
