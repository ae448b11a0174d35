// Package hjarta wires configuration roots, the HTTP inspector and structured
// logging into an Fx application.
//
//	app := hjarta.NewApp(
//		hjarta.WithConfigRoot("/srv/shop", config.WithBundle(defaults)),
//		hjarta.WithInspector(inspect.WithAddress("127.0.0.1:9090")),
//	)
//	app.Run()
package hjarta
