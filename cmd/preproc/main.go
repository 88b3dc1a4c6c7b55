// Command preproc normalizes a raw edgelist into the sorted, contiguous,
// symmetrized format the engine's loaders expect:
//
//	preproc <edgelist_in> <edgelist_out> <weighted:0|1>
package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/pbsp/preproc"
)

var (
	appName = "preproc"
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
	app.Usage = "normalize a raw edgelist into the engine's native format"
	app.ArgsUsage = "<edgelist_in> <edgelist_out> <weighted:0|1>"
	app.Action = runMain

	if err := app.Run(os.Args); err != nil {
		logger.WithField("err", err).Error("preproc failed")
		os.Exit(1)
	}
}

func runMain(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.NewExitError("usage: preproc <edgelist_in> <edgelist_out> <weighted:0|1>", 2)
	}
	inPath, outPath, flag := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)
	logger = logger.WithFields(logrus.Fields{"input": inPath, "output": outPath})

	var weighted bool
	switch flag {
	case "0":
		weighted = false
	case "1":
		weighted = true
	default:
		return cli.NewExitError("weighted flag must be 0 or 1", 2)
	}

	if err := preproc.Preprocess(inPath, outPath, weighted); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.Info("preprocessing complete")

	return nil
}
