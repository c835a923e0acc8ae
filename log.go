package bigmath

import (
	"github.com/privacybydesign/bigmath/calculator"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.StandardLogger()

func init() {
	calculator.Logger = Logger
}
