// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/consensys/bavard"
	"golang.org/x/sync/errgroup"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "gnark-algebra")

//go:generate go run main.go
func main() {

	bn254 := templateData{
		Dir:     "bn254",
		Package: "bn254",
		Curve:   "BN254",
	}
	bls12_377 := templateData{
		Dir:     "bls12-377",
		Package: "bls12377",
		Curve:   "BLS12-377",
	}
	bls12_381 := templateData{
		Dir:     "bls12-381",
		Package: "bls12381",
		Curve:   "BLS12-381",
	}

	datas := []templateData{
		bn254,
		bls12_377,
		bls12_381,
	}

	var g errgroup.Group

	for _, d := range datas {
		g.Go(func() error {
			fieldDir := filepath.Join("../../field", d.Dir)
			domainDir := filepath.Join("../../domain", d.Dir)

			if err := os.MkdirAll(fieldDir, 0700); err != nil {
				return err
			}
			if err := os.MkdirAll(domainDir, 0700); err != nil {
				return err
			}

			// field element wrapper
			entries := []bavard.Entry{
				{File: filepath.Join(fieldDir, "element.go"), Templates: []string{"element.go.tmpl"}},
				{File: filepath.Join(fieldDir, "element_test.go"), Templates: []string{"tests/element.go.tmpl"}},
			}
			if err := bgen.Generate(d, d.Package, "./template/field/", entries...); err != nil {
				return err
			}

			// evaluation domain adapter
			entries = []bavard.Entry{
				{File: filepath.Join(domainDir, "domain.go"), Templates: []string{"domain.go.tmpl"}},
				{File: filepath.Join(domainDir, "domain_test.go"), Templates: []string{"tests/domain.go.tmpl"}},
			}
			return bgen.Generate(d, d.Package, "./template/domain/", entries...)
		})
	}

	if err := g.Wait(); err != nil {
		panic(err)
	}

	// run go fmt on whole directory
	cmd := exec.Command("gofmt", "-s", "-w", "../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

}

type templateData struct {
	Dir     string // directory under field/ and domain/, matching the gnark-crypto ecc subdirectory
	Package string // package name, also the prefix of panic messages
	Curve   string // display name used in documentation
}
