// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package hcodec

// BookMaxBits is the maximum length of a code in Book.
const BookMaxBits = 12

// BookCode is a prefix code used to store code lengths.
type BookCode struct {
	Code  uint16
	NBits uint8
}

// Book is the static canonical prefix code for the code lengths of a
// codebook. Short code lengths are frequent and get short codes. The entry
// at index i encodes the code length i.
var Book = [MaxSymbols]BookCode{
	{0x000, 1},  // 0: 0
	{0x396, 10}, // 1: 1110010110
	{0x0dc, 8},  // 2: 11011100
	{0x06c, 7},  // 3: 1101100
	{0x034, 6},  // 4: 110100
	{0x016, 5},  // 5: 10110
	{0x008, 4},  // 6: 1000
	{0x009, 4},  // 7: 1001
	{0x00a, 4},  // 8: 1010
	{0x017, 5},  // 9: 10111
	{0x018, 5},  // 10: 11000
	{0x019, 5},  // 11: 11001
	{0x035, 6},  // 12: 110101
	{0x06d, 7},  // 13: 1101101
	{0x0dd, 8},  // 14: 11011101
	{0x0de, 8},  // 15: 11011110
	{0x0df, 8},  // 16: 11011111
	{0x0e0, 8},  // 17: 11100000
	{0x1c2, 9},  // 18: 111000010
	{0x1c3, 9},  // 19: 111000011
	{0x1c4, 9},  // 20: 111000100
	{0x1c5, 9},  // 21: 111000101
	{0x1c6, 9},  // 22: 111000110
	{0x1c7, 9},  // 23: 111000111
	{0x1c8, 9},  // 24: 111001000
	{0x1c9, 9},  // 25: 111001001
	{0x1ca, 9},  // 26: 111001010
	{0x397, 10}, // 27: 1110010111
	{0x398, 10}, // 28: 1110011000
	{0x399, 10}, // 29: 1110011001
	{0x734, 11}, // 30: 11100110100
	{0x735, 11}, // 31: 11100110101
	{0x736, 11}, // 32: 11100110110
	{0x737, 11}, // 33: 11100110111
	{0x738, 11}, // 34: 11100111000
	{0x739, 11}, // 35: 11100111001
	{0x73a, 11}, // 36: 11100111010
	{0x73b, 11}, // 37: 11100111011
	{0x73c, 11}, // 38: 11100111100
	{0x73d, 11}, // 39: 11100111101
	{0x73e, 11}, // 40: 11100111110
	{0x73f, 11}, // 41: 11100111111
	{0x740, 11}, // 42: 11101000000
	{0x741, 11}, // 43: 11101000001
	{0x742, 11}, // 44: 11101000010
	{0x743, 11}, // 45: 11101000011
	{0x744, 11}, // 46: 11101000100
	{0x745, 11}, // 47: 11101000101
	{0x746, 11}, // 48: 11101000110
	{0x747, 11}, // 49: 11101000111
	{0x748, 11}, // 50: 11101001000
	{0x749, 11}, // 51: 11101001001
	{0x74a, 11}, // 52: 11101001010
	{0x74b, 11}, // 53: 11101001011
	{0x74c, 11}, // 54: 11101001100
	{0x74d, 11}, // 55: 11101001101
	{0x74e, 11}, // 56: 11101001110
	{0x74f, 11}, // 57: 11101001111
	{0x750, 11}, // 58: 11101010000
	{0x751, 11}, // 59: 11101010001
	{0x752, 11}, // 60: 11101010010
	{0x753, 11}, // 61: 11101010011
	{0x754, 11}, // 62: 11101010100
	{0x755, 11}, // 63: 11101010101
	{0x756, 11}, // 64: 11101010110
	{0x757, 11}, // 65: 11101010111
	{0x758, 11}, // 66: 11101011000
	{0x759, 11}, // 67: 11101011001
	{0x75a, 11}, // 68: 11101011010
	{0x75b, 11}, // 69: 11101011011
	{0x75c, 11}, // 70: 11101011100
	{0x75d, 11}, // 71: 11101011101
	{0x75e, 11}, // 72: 11101011110
	{0x75f, 11}, // 73: 11101011111
	{0x760, 11}, // 74: 11101100000
	{0x761, 11}, // 75: 11101100001
	{0x762, 11}, // 76: 11101100010
	{0x763, 11}, // 77: 11101100011
	{0x764, 11}, // 78: 11101100100
	{0x765, 11}, // 79: 11101100101
	{0x766, 11}, // 80: 11101100110
	{0x767, 11}, // 81: 11101100111
	{0x768, 11}, // 82: 11101101000
	{0x769, 11}, // 83: 11101101001
	{0x76a, 11}, // 84: 11101101010
	{0x76b, 11}, // 85: 11101101011
	{0x76c, 11}, // 86: 11101101100
	{0x76d, 11}, // 87: 11101101101
	{0x76e, 11}, // 88: 11101101110
	{0x76f, 11}, // 89: 11101101111
	{0x770, 11}, // 90: 11101110000
	{0x771, 11}, // 91: 11101110001
	{0x772, 11}, // 92: 11101110010
	{0x773, 11}, // 93: 11101110011
	{0x774, 11}, // 94: 11101110100
	{0x775, 11}, // 95: 11101110101
	{0x776, 11}, // 96: 11101110110
	{0x777, 11}, // 97: 11101110111
	{0x778, 11}, // 98: 11101111000
	{0x779, 11}, // 99: 11101111001
	{0x77a, 11}, // 100: 11101111010
	{0x77b, 11}, // 101: 11101111011
	{0x77c, 11}, // 102: 11101111100
	{0x77d, 11}, // 103: 11101111101
	{0x77e, 11}, // 104: 11101111110
	{0x77f, 11}, // 105: 11101111111
	{0x780, 11}, // 106: 11110000000
	{0x781, 11}, // 107: 11110000001
	{0x782, 11}, // 108: 11110000010
	{0x783, 11}, // 109: 11110000011
	{0x784, 11}, // 110: 11110000100
	{0x785, 11}, // 111: 11110000101
	{0x786, 11}, // 112: 11110000110
	{0x787, 11}, // 113: 11110000111
	{0x788, 11}, // 114: 11110001000
	{0x789, 11}, // 115: 11110001001
	{0x78a, 11}, // 116: 11110001010
	{0x78b, 11}, // 117: 11110001011
	{0x78c, 11}, // 118: 11110001100
	{0x78d, 11}, // 119: 11110001101
	{0x78e, 11}, // 120: 11110001110
	{0x78f, 11}, // 121: 11110001111
	{0x790, 11}, // 122: 11110010000
	{0x791, 11}, // 123: 11110010001
	{0x792, 11}, // 124: 11110010010
	{0x793, 11}, // 125: 11110010011
	{0x794, 11}, // 126: 11110010100
	{0x795, 11}, // 127: 11110010101
	{0x796, 11}, // 128: 11110010110
	{0x797, 11}, // 129: 11110010111
	{0x798, 11}, // 130: 11110011000
	{0x799, 11}, // 131: 11110011001
	{0x79a, 11}, // 132: 11110011010
	{0x79b, 11}, // 133: 11110011011
	{0x79c, 11}, // 134: 11110011100
	{0x79d, 11}, // 135: 11110011101
	{0x79e, 11}, // 136: 11110011110
	{0x79f, 11}, // 137: 11110011111
	{0x7a0, 11}, // 138: 11110100000
	{0x7a1, 11}, // 139: 11110100001
	{0x7a2, 11}, // 140: 11110100010
	{0x7a3, 11}, // 141: 11110100011
	{0x7a4, 11}, // 142: 11110100100
	{0x7a5, 11}, // 143: 11110100101
	{0x7a6, 11}, // 144: 11110100110
	{0x7a7, 11}, // 145: 11110100111
	{0x7a8, 11}, // 146: 11110101000
	{0x7a9, 11}, // 147: 11110101001
	{0x7aa, 11}, // 148: 11110101010
	{0x7ab, 11}, // 149: 11110101011
	{0x7ac, 11}, // 150: 11110101100
	{0x7ad, 11}, // 151: 11110101101
	{0x7ae, 11}, // 152: 11110101110
	{0x7af, 11}, // 153: 11110101111
	{0x7b0, 11}, // 154: 11110110000
	{0x7b1, 11}, // 155: 11110110001
	{0x7b2, 11}, // 156: 11110110010
	{0x7b3, 11}, // 157: 11110110011
	{0x7b4, 11}, // 158: 11110110100
	{0x7b5, 11}, // 159: 11110110101
	{0x7b6, 11}, // 160: 11110110110
	{0x7b7, 11}, // 161: 11110110111
	{0x7b8, 11}, // 162: 11110111000
	{0x7b9, 11}, // 163: 11110111001
	{0x7ba, 11}, // 164: 11110111010
	{0x7bb, 11}, // 165: 11110111011
	{0x7bc, 11}, // 166: 11110111100
	{0x7bd, 11}, // 167: 11110111101
	{0x7be, 11}, // 168: 11110111110
	{0x7bf, 11}, // 169: 11110111111
	{0x7c0, 11}, // 170: 11111000000
	{0x7c1, 11}, // 171: 11111000001
	{0x7c2, 11}, // 172: 11111000010
	{0x7c3, 11}, // 173: 11111000011
	{0x7c4, 11}, // 174: 11111000100
	{0x7c5, 11}, // 175: 11111000101
	{0x7c6, 11}, // 176: 11111000110
	{0x7c7, 11}, // 177: 11111000111
	{0x7c8, 11}, // 178: 11111001000
	{0x7c9, 11}, // 179: 11111001001
	{0x7ca, 11}, // 180: 11111001010
	{0x7cb, 11}, // 181: 11111001011
	{0x7cc, 11}, // 182: 11111001100
	{0x7cd, 11}, // 183: 11111001101
	{0x7ce, 11}, // 184: 11111001110
	{0x7cf, 11}, // 185: 11111001111
	{0x7d0, 11}, // 186: 11111010000
	{0x7d1, 11}, // 187: 11111010001
	{0x7d2, 11}, // 188: 11111010010
	{0x7d3, 11}, // 189: 11111010011
	{0x7d4, 11}, // 190: 11111010100
	{0x7d5, 11}, // 191: 11111010101
	{0x7d6, 11}, // 192: 11111010110
	{0x7d7, 11}, // 193: 11111010111
	{0x7d8, 11}, // 194: 11111011000
	{0x7d9, 11}, // 195: 11111011001
	{0x7da, 11}, // 196: 11111011010
	{0x7db, 11}, // 197: 11111011011
	{0x7dc, 11}, // 198: 11111011100
	{0x7dd, 11}, // 199: 11111011101
	{0x7de, 11}, // 200: 11111011110
	{0x7df, 11}, // 201: 11111011111
	{0x7e0, 11}, // 202: 11111100000
	{0x7e1, 11}, // 203: 11111100001
	{0x7e2, 11}, // 204: 11111100010
	{0x7e3, 11}, // 205: 11111100011
	{0x7e4, 11}, // 206: 11111100100
	{0x7e5, 11}, // 207: 11111100101
	{0x7e6, 11}, // 208: 11111100110
	{0x7e7, 11}, // 209: 11111100111
	{0x7e8, 11}, // 210: 11111101000
	{0x7e9, 11}, // 211: 11111101001
	{0xfd4, 12}, // 212: 111111010100
	{0xfd5, 12}, // 213: 111111010101
	{0xfd6, 12}, // 214: 111111010110
	{0xfd7, 12}, // 215: 111111010111
	{0xfd8, 12}, // 216: 111111011000
	{0xfd9, 12}, // 217: 111111011001
	{0xfda, 12}, // 218: 111111011010
	{0xfdb, 12}, // 219: 111111011011
	{0xfdc, 12}, // 220: 111111011100
	{0xfdd, 12}, // 221: 111111011101
	{0xfde, 12}, // 222: 111111011110
	{0xfdf, 12}, // 223: 111111011111
	{0xfe0, 12}, // 224: 111111100000
	{0xfe1, 12}, // 225: 111111100001
	{0xfe2, 12}, // 226: 111111100010
	{0xfe3, 12}, // 227: 111111100011
	{0xfe4, 12}, // 228: 111111100100
	{0xfe5, 12}, // 229: 111111100101
	{0xfe6, 12}, // 230: 111111100110
	{0xfe7, 12}, // 231: 111111100111
	{0xfe8, 12}, // 232: 111111101000
	{0xfe9, 12}, // 233: 111111101001
	{0xfea, 12}, // 234: 111111101010
	{0xfeb, 12}, // 235: 111111101011
	{0xfec, 12}, // 236: 111111101100
	{0xfed, 12}, // 237: 111111101101
	{0xfee, 12}, // 238: 111111101110
	{0xfef, 12}, // 239: 111111101111
	{0xff0, 12}, // 240: 111111110000
	{0xff1, 12}, // 241: 111111110001
	{0xff2, 12}, // 242: 111111110010
	{0xff3, 12}, // 243: 111111110011
	{0xff4, 12}, // 244: 111111110100
	{0xff5, 12}, // 245: 111111110101
	{0xff6, 12}, // 246: 111111110110
	{0xff7, 12}, // 247: 111111110111
	{0xff8, 12}, // 248: 111111111000
	{0xff9, 12}, // 249: 111111111001
	{0xffa, 12}, // 250: 111111111010
	{0xffb, 12}, // 251: 111111111011
	{0xffc, 12}, // 252: 111111111100
	{0xffd, 12}, // 253: 111111111101
	{0xffe, 12}, // 254: 111111111110
	{0xfff, 12}, // 255: 111111111111
}
