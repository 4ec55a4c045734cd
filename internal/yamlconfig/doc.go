// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlconfig provides a YAML implementation of config.Loader. It
// reads .yaml and .yml files, one or more documents per file, into the same
// config.Model the HCL loader produces:
//
//	settings:
//	  max_call_depth: 64
//	world:
//	  rows: ["R..", "O..", "..."]
//	programs:
//	  - name: light_one
//	    reset: true
//	    instructions: |
//	      FORWARD
//	      LIGHT
//	    expect:
//	      position: [1, 0]
//	      map: [".x.", "O..", "..."]
//
// Unknown keys are rejected.
package yamlconfig
