// Package client implements the headless client application runtime.
//
// It wires the enrollment/login orchestrator, the camera frame source, and
// the background verify and reconcile jobs into a single process lifecycle.
// Presentation is out of process: a front end drives enrollment and data
// entry through the service layer while this runtime keeps the device
// authenticated and the local cache reconciled.
package client
