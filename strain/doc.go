// Package strain provides the time- and frequency-domain series model for
// gravitational-wave detector data and the Fourier packing between the two.
//
// A one-sided FrequencySeries holds bins from DC to Nyquist (length N/2+1
// for an N-sample real series, F0 = 0). A two-sided FrequencySeries holds
// bins packed monotonically from -fNyq to +fNyq-deltaF (length N, F0 = -fNyq,
// DC at index N/2); this is the layout produced by transforming a complex
// time series and consumed by the two-sided inner products.
package strain
