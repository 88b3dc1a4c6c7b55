// Command cc computes weakly connected components over a tab-separated
// edgelist:
//
//	cc <edgelist_in> <outfile>
package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/pbsp/algorithms/cc"
	"github.com/katalvlaran/pbsp/output"
	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/engine"
)

var (
	appName = "cc"
	logger  *logrus.Entry
)

func main() {
	rootLogger := logrus.New()
	rootLogger.SetFormatter(new(logrus.JSONFormatter))
	logger = rootLogger.WithFields(logrus.Fields{
		"app":    appName,
		"run_id": uuid.New().String(),
	})

	app := cli.NewApp()
	app.Name = appName
	app.Usage = "weakly connected components over a tab-separated edgelist"
	app.ArgsUsage = "<edgelist_in> <outfile>"
	app.Action = runMain

	if err := app.Run(os.Args); err != nil {
		logger.WithField("err", err).Error("cc failed")
		os.Exit(1)
	}
}

func runMain(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("usage: cc <edgelist_in> <outfile>", 2)
	}
	inPath, outPath := c.Args().Get(0), c.Args().Get(1)
	logger = logger.WithField("input", inPath)

	g, err := csr.LoadEdgeList(inPath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.WithFields(logrus.Fields{"vertices": g.V, "edges": g.E}).Info("loaded graph")

	e := engine.New[int32](g, cc.Program{}, engine.WithLogger[int32](logger))
	cc.Init(e.Vertices())

	steps := e.Run()
	logger.WithField("supersteps", steps).Info("converged")

	if err := output.Write(outPath, "component", e.Vertices(), cc.Render); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	return nil
}
