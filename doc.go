// Package restsdk is the base layer of a REST API SDK: it turns a method, a
// resource path, an access token and a JSON payload into an HTTP call against
// the configured service endpoint and decodes the JSON answer.
//
// A Client is built from its collaborators:
//
//	client := restsdk.New(
//		restsdk.WithStore(config.NewStore()),
//		restsdk.WithProvider(connection.NewHTTPProvider()),
//	)
//	res, err := restsdk.Execute[Payment](ctx, client,
//		restsdk.NewCallContext(token).WithGeneratedRequestID(),
//		http.MethodGet, "payments/PAY-123", "")
//
// The package-level functions use one shared client over the process-wide
// configuration store:
//
//	if err := restsdk.InitConfigFile("sdk_config.properties"); err != nil { ... }
//	ctx = restsdk.WithDiagnostics(ctx)
//	payment, err := restsdk.ConfigureAndExecute[Payment](ctx, token, http.MethodGet, "payments/PAY-123", "")
//	sent, _ := restsdk.LastRequest(ctx)
//
// Without an explicit InitConfig call the first request loads the default
// configuration once. Every failure is returned as an *errors.CallError whose
// Code names the failing stage.
package restsdk
