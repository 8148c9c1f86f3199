/*
 * doc.go, part of goTPS.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosDOTutaDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package tps provides the core types for transition path sampling
simulations: topologies, frames, paths and the geometric kernels used to
define collective variables over them. The actual machinery lives in the
subpackages:

	ff       force-field terms and built-in model systems
	engine   thermostatted molecular dynamics propagation
	cv       collective variables (torsions, distances)
	volume   stable-state definitions over collective variables
	network  transition networks and path ensembles
	shoot    shooting moves and the Monte Carlo sampler
	traj/ptf compressed path-archive storage
	pathstat statistics and plots over sampled path ensembles
	config   YAML run configuration for the gotps command

Distances are in Angstroms, energies in kcal/mol, masses in amu and
temperatures in Kelvin. The time unit follows from those (AKMA convention,
one time unit is 48.888 fs).
*/
package tps
