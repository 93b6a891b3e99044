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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidChunkRecord indicates a ChunkRecord failed validation.
	ErrInvalidChunkRecord = errors.New("invalid chunk record")

	// ErrInvalidDocument indicates a DocumentRecord failed validation.
	ErrInvalidDocument = errors.New("invalid document record")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrUntrimmedContent indicates the Content field has surrounding whitespace.
	ErrUntrimmedContent = errors.New("content must be trimmed")

	// ErrInvalidChunkType indicates an invalid ChunkType value.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrInvalidRoutePath indicates an invalid RoutePath value.
	ErrInvalidRoutePath = errors.New("invalid route path")

	// ErrEmptyDocumentID indicates the document identifier is empty.
	ErrEmptyDocumentID = errors.New("document id cannot be empty")

	// ErrEmptySourcePath indicates the source path is empty.
	ErrEmptySourcePath = errors.New("source path cannot be empty")

	// ErrNegativeSequence indicates a negative chunk sequence number.
	ErrNegativeSequence = errors.New("chunk sequence cannot be negative")
)
