// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the HCL implementation of config.Loader. It is
// responsible for finding .hcl files, parsing and decoding them, validating
// literal values with HCL diagnostics and translating everything into the
// format-agnostic config.Model.
//
// A configuration holds at most one settings block, exactly one world block
// across all files, and any number of program blocks:
//
//	settings {
//	  max_call_depth = 64
//	}
//
//	world {
//	  rows = ["R..", "O..", "..."]
//	}
//
//	program "light_one" {
//	  reset        = true
//	  instructions = ["FORWARD", "LIGHT"]
//
//	  expect {
//	    position = [1, 0]
//	    map      = [".x.", "O..", "..."]
//	  }
//	}
package hcl
