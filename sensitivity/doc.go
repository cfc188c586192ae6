// Package sensitivity measures how fragile an optimal transportation plan
// is against uncertainty in a single cost coefficient, using a
// one-at-a-time (OAT) perturbation scheme built on interval type-2 (IT2)
// trapezoidal fuzzy numbers.
//
// # Scheme
//
// For each seeding method the study:
//
//  1. solves the base instance and finds the worst cell of the seed, the
//     basic cell contributing the largest cost·flow product;
//  2. for every perturbation level p, widens the worst cell's crisp cost
//     into an IT2 trapezoid with an asymmetric shift of p·cost (the shift
//     forces the defuzzified value to actually move, a plain symmetric
//     spread would defuzzify back onto itself), then collapses it to a
//     crisp value by 8-point centroid defuzzification;
//  3. re-solves the perturbed instance with the same method and records
//     the absolute change of the certified optimal cost.
//
// The report compares the average change of the two methods: both zero
// means both are robust at the probed levels; otherwise the larger
// average marks the more sensitive method, with the ratio quantifying by
// how much.
//
// Perturbing costs never touches supply or demand, so every perturbed
// instance stays balanced and passes validation unchanged.
package sensitivity
