package ckaccum

import (
	"github.com/sirupsen/logrus"

	"github.com/finitefield/ckaccum/accumulator"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
	accumulator.Logger = Logger
}
