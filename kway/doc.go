// Package kway implements the k-way mapper (spec.md §4.G): phase 1
// builds an initial k-way mapping by walking the target architecture's
// domain-bipart tree breadth-first, delegating each split to the 2-way
// bipart engine; phase 2 refines it iteratively with a k-way diffusion
// refiner running on a small band graph extracted around the current
// frontier.
package kway
