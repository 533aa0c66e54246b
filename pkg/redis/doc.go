// Package redis connects to Redis with retries and exposes a readiness
// check for the HTTP health endpoint.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	mux.Handle("/health/ready", httpserver.HealthCheckHandler(log, redis.Healthcheck(client)))
//
// Config is populated from REDIS_* environment variables via pkg/config.
package redis
