// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package letters maps between the letters A..Z and the numbers 1..26 and
// turns four-letter words into quads.
package letters
