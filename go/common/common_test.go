package common

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitWith_UsingFlagSetOptChangesFlagSet(t *testing.T) {
	myFlagSet := flag.NewFlagSet("my-app-name", flag.ContinueOnError)
	err := InitWith("my-app-name", FlagSetOpt(myFlagSet))

	// Expected to fail since this parses the test binary's own os.Args, and
	// we haven't registered any of its flags on myFlagSet.
	require.Error(t, err)
	require.Equal(t, myFlagSet, FlagSet)
	require.True(t, FlagSet.Parsed())
}

func TestPrometheusOpt_NilAddrIsSafe(t *testing.T) {
	myFlagSet := flag.NewFlagSet("my-app-name-2", flag.ContinueOnError)
	err := InitWith("my-app-name-2", FlagSetOpt(myFlagSet), PrometheusOpt(nil))
	require.Error(t, err)
}
