// Package optimize provides bounded nonlinear least-squares fitting on top
// of Levenberg-Marquardt.
package optimize
