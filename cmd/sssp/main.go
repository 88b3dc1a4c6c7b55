// Command sssp runs single-source shortest path over a tab-separated
// weighted edgelist:
//
//	sssp <edgelist_in> <src> <outfile>
package main

import (
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/pbsp/algorithms/sssp"
	"github.com/katalvlaran/pbsp/output"
	"github.com/katalvlaran/pbsp/pbsp/csr"
	"github.com/katalvlaran/pbsp/pbsp/engine"
)

var (
	appName = "sssp"
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
	app.Usage = "single-source shortest path over a tab-separated weighted edgelist"
	app.ArgsUsage = "<edgelist_in> <src> <outfile>"
	app.Action = runMain

	if err := app.Run(os.Args); err != nil {
		logger.WithField("err", err).Error("sssp failed")
		os.Exit(1)
	}
}

func runMain(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.NewExitError("usage: sssp <edgelist_in> <src> <outfile>", 2)
	}
	inPath, srcArg, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	logger = logger.WithField("input", inPath)

	src, err := strconv.ParseInt(srcArg, 10, 32)
	if err != nil {
		return cli.NewExitError("src must be an integer vertex id", 2)
	}

	g, err := csr.LoadEdgeList(inPath)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.WithFields(logrus.Fields{"vertices": g.V, "edges": g.E}).Info("loaded graph")

	e := engine.New[int32](g, sssp.Program{}, engine.WithLogger[int32](logger))
	if err := sssp.Init(e.Vertices(), int32(src)); err != nil {
		return cli.NewExitError(err.Error(), 3)
	}

	steps := e.Run()
	logger.WithField("supersteps", steps).Info("converged")

	if err := output.Write(outPath, "dist", e.Vertices(), sssp.Render); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	return nil
}
