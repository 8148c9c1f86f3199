/*
 * conversion.go, part of goTPS.
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

package tps

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
)

//Physical constants, AKMA units
const (
	KB      = 0.0019872041 //Boltzmann constant, kcal/mol/K
	AKMA2Fs = 48.88821     //one AKMA time unit in femtoseconds
)
