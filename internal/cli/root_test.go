package cli

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))
	require.NotNil(t, cmd)
	assert.Equal(t, "storefront", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))
	commands := [][]string{
		{"cart", "add"},
		{"cart", "remove"},
		{"cart", "set"},
		{"cart", "clear"},
		{"cart", "show"},
		{"coupon", "list"},
		{"products", "list"},
		{"checkout"},
		{"migrate"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))

	ownerFlag := cmd.PersistentFlags().Lookup("owner")
	require.NotNil(t, ownerFlag)
	assert.Equal(t, defaultOwner, ownerFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	cfg := &config.Config{App: config.AppConfig{MetricsFile: "/tmp/storefront.prom"}}
	metricsFlag := NewRootCommand(NewApp(cfg, nil, nil)).PersistentFlags().Lookup("metrics-file")
	require.NotNil(t, metricsFlag)
	assert.Equal(t, "/tmp/storefront.prom", metricsFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))
	cmd.SetArgs([]string{"--format", "xml", "coupon", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestEmptyOwner(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))
	cmd.SetArgs([]string{"--owner", "", "cart", "show"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner is empty")
}

func TestCheckoutRequiredFlags(t *testing.T) {
	cmd := NewRootCommand(NewApp(&config.Config{}, nil, nil))
	checkoutCmd, _, err := cmd.Find([]string{"checkout"})
	require.NoError(t, err)

	for _, name := range []string{"customer-id", "email", "coupon", "address-id"} {
		assert.NotNil(t, checkoutCmd.Flags().Lookup(name), name)
	}
}
