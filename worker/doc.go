// Package worker runs FHIR document validation on a pool of goroutines.
//
// Batches of JSON documents are validated in parallel while results keep
// the order of the input:
//
//	bv := worker.NewBatchValidator(v.ValidateBytes, 4)
//	batch := bv.ValidateBatch(ctx, documents)
//	for _, r := range batch.Results {
//	    if r.Error != nil {
//	        // the document could not be decoded
//	    }
//	    // inspect r.Result.Issues
//	}
//
// A long-lived Pool accepts jobs one at a time and streams results back:
//
//	pool := worker.NewPool(v, 4)
//	pool.Submit(worker.Job{ID: "bundle-entry-1", Resource: doc})
//	result := <-pool.Results()
package worker
