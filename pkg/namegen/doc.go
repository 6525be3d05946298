// Package namegen generates human-readable, collision-free file names from
// word-template presets.
//
// A Preset describes how a name is built: ordered template slots (literal
// prefix, adjectives, a noun, literal suffix, date stamp), a delimiter, a
// case style, and the word banks the preset may draw from. Generation picks
// words through a deterministic pseudo-random sequence, preferring words not
// yet used in the batch's Session, assembles and normalizes the candidate,
// and checks it against the session's used names and the durable ledger.
//
// Collisions and validation failures never surface to the caller: colliding
// candidates retry, presets with counters probe numeric suffixes, and an
// exhausted attempt limit cascades through fallback tiers (random hash,
// timestamp, absolute last resort) until a name is produced. Only ledger I/O
// errors and the two configuration errors from package wordbank abort a call.
//
// # Usage
//
//	svc := namegen.NewService(ledger.NewInMemory())
//	sess := namegen.NewSession()
//
//	generated, err := svc.Generate(ctx, namegen.Request{
//	    Preset:    preset,
//	    Banks:     wordbank.Builtin(),
//	    Extension: ".jpg",
//	    Session:   sess,
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Accept the name: claim it durably and mark it for this batch.
//	if err := svc.Register(ctx, namegen.RegisterRequest{
//	    Name:      generated.Name,
//	    Extension: ".jpg",
//	    PresetID:  preset.ID,
//	}); err != nil {
//	    return err
//	}
//	sess.MarkName(generated.Key)
//
// Undo releases the keys without deleting history:
//
//	_ = svc.Release(ctx, generated.Key)
//
// The engine guarantees uniqueness for sequential use by one caller. The
// generate-then-register sequence is a check-then-act pair: processes sharing
// a ledger must serialize it externally (a lock or transaction) if they need
// cross-process uniqueness.
package namegen
