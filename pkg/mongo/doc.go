// Package mongo connects to MongoDB with retry and environment-driven
// configuration. It backs the ledger's mongostore:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := mongostore.New(db)
package mongo
