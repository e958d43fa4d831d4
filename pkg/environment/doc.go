// Package environment names the environments the guardcheck tooling runs in
// (development, staging, production) and carries the active one through
// context.Context so structured logs can be tagged with it.
//
// Parse accepts both canonical names and the short aliases "dev", "stage"
// and "prod". Unknown names fall back to Development.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("GUARDCHECK_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "guardcheck"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
package environment
