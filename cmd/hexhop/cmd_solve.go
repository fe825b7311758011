package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexhop/frogpath"
	"github.com/katalvlaran/hexhop/pond"
)

// errNoSolution makes main exit with status 2 without printing an error.
var errNoSolution = errors.New("no solution")

var solveFlags struct {
	path bool
}

var solveCmd = &cobra.Command{
	Use:   "solve <pond-file>",
	Short: "Search a pond and print the visited cells and flies eaten",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveFlags.path, "path", false, "also print the final start-to-end path")
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.ErrOrStderr())

	p, err := pond.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"pond":  p.Name,
		"rows":  p.Rows,
		"cols":  p.Cols,
		"cells": p.Len(),
	}).Debug("pond loaded")

	res, err := frogpath.FindPath(p, searchHooks(log)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res)
	log.WithFields(logrus.Fields{
		"state":   res.State.String(),
		"steps":   res.Steps,
		"retired": res.Retired,
		"flies":   res.Flies,
	}).Info("search finished")

	if !res.Solved() {
		return errNoSolution
	}
	if solveFlags.path {
		fmt.Fprintln(out, "path:", strings.Join(res.Path, " "))
	}

	return nil
}

// searchHooks forwards search events to log at debug level.
func searchHooks(log *logrus.Logger) []frogpath.Option {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}

	return []frogpath.Option{
		frogpath.WithOnVisit(func(id string) {
			log.WithField("cell", id).Debug("visit")
		}),
		frogpath.WithOnHop(func(from, to string, score float64) {
			log.WithFields(logrus.Fields{"from": from, "to": to, "score": score}).Debug("hop")
		}),
		frogpath.WithOnEat(func(id string, flies int) {
			log.WithFields(logrus.Fields{"cell": id, "flies": flies}).Debug("eat")
		}),
		frogpath.WithOnRetire(func(id string) {
			log.WithField("cell", id).Debug("retire")
		}),
	}
}
