// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package extract turns source documents of various formats into flat text.
//
// Each Extractor handles one family of file formats and guarantees that the
// string it returns is valid text; downstream components (the chunker in
// particular) never deal with encoding concerns. A Registry maps file
// extensions to extractors and reports ErrUnsupportedFormat for everything
// it does not know.
package extract
