// Package service provides the registry of tool providers.
//
// A Provider describes itself with a types.Service definition and executes
// tools addressed as "<service>.<tool>". The HTTP layer lists the registry
// and forwards execution requests to it.
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(location.NewProvider(location.Config{}))
//	result, err := registry.Execute(ctx, "location.params", params, appCtx)
package service
